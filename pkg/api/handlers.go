package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.Status(http.StatusOK)
}

func (s *Server) handleChannel(c *gin.Context) {
	id := c.Param("id")

	summary, err := s.Gateway.Channel(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err, logrus.Fields{"channel": id})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (s *Server) handleVideo(c *gin.Context) {
	id := c.Param("id")

	stream, err := s.Gateway.Video(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err, logrus.Fields{"vid": id})
		return
	}
	c.JSON(http.StatusOK, stream)
}

func (s *Server) handleSegments(c *gin.Context) {
	id := c.Param("id")

	segments, err := s.Gateway.SkipSegments(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err, logrus.Fields{"vid": id})
		return
	}
	c.JSON(http.StatusOK, segments)
}

func (s *Server) handleSearch(c *gin.Context) {
	query := searchQuery(c)

	results, err := s.Gateway.Search(c.Request.Context(), query)
	if err != nil {
		s.respondError(c, err, logrus.Fields{"q": query})
		return
	}
	c.JSON(http.StatusOK, results)
}

// searchQuery reads q from the query string, a form body or a JSON body, in that order.
func searchQuery(c *gin.Context) string {
	if q := c.Query("q"); q != "" {
		return q
	}
	if c.ContentType() == gin.MIMEJSON {
		var req struct {
			Q string `json:"q"`
		}
		if err := c.ShouldBindJSON(&req); err == nil {
			return req.Q
		}
		return ""
	}
	return c.PostForm("q")
}
