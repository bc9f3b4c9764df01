package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Meertayyab/portfolio/internal/contact"
	"github.com/Meertayyab/portfolio/internal/metrics"
	"github.com/Meertayyab/portfolio/internal/page"
	"github.com/Meertayyab/portfolio/internal/view"
)

// Context keys set by page handlers for the tracking middleware.
const (
	ctxSection = "view.section"
	ctxTheme   = "view.theme"
)

func (s *Server) data(st view.State) page.Data {
	return page.Data{
		State:          st,
		Site:           s.content.Site(),
		ContactEnabled: s.relay != nil,
		Year:           s.now().Year(),
	}
}

// Full page for the state in the query string.
func (s *Server) handlePage(c *gin.Context) {
	st := view.FromQuery(c.Request.URL.Query())
	s.render(c, st, s.renderer.View, "page.html", "page")
}

// HTMX fragment holding only the requested section.
func (s *Server) handleFragment(c *gin.Context) {
	st := view.FromQuery(c.Request.URL.Query()).Navigate(view.Section(c.Param("name")))
	s.render(c, st, s.renderer.Fragment, "fragment.html", "fragment")
}

func (s *Server) render(c *gin.Context, st view.State, build func(page.Data) (page.View, error), tmpl, kind string) {
	v, err := build(s.data(st))
	if err != nil {
		s.log.Error("failed to render section",
			zap.String("section", string(st.Section)),
			zap.String("request_id", c.GetString(ctxRequestID)),
			zap.Error(err))
		c.String(http.StatusInternalServerError, "Sorry, this page could not be rendered.")
		return
	}

	label := sectionLabel(st.Section)
	c.Set(ctxSection, label)
	c.Set(ctxTheme, st.Theme())
	metrics.RecordPageRender(label, st.Theme(), kind)

	c.HTML(http.StatusOK, tmpl, v)
}

// sectionLabel keeps arbitrary query input out of metric and analytics
// labels.
func sectionLabel(s view.Section) string {
	for _, known := range view.Sections {
		if s == known {
			return string(s)
		}
	}
	return "other"
}

// Handle contact form submission with HTMX
func (s *Server) handleContact(c *gin.Context) {
	var msg contact.Message
	if err := c.ShouldBind(&msg); err != nil {
		metrics.IncrementContactSubmission("invalid")
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Please provide your name, a valid email address and a message.",
		})
		return
	}

	if err := s.relay.Send(c.Request.Context(), msg); err != nil {
		metrics.IncrementContactSubmission("failed")
		s.log.Error("contact relay failed", zap.String("request_id", c.GetString(ctxRequestID)), zap.Error(err))
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}

	metrics.IncrementContactSubmission("sent")
	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": "Thank you for your message! I'll get back to you soon.",
	})
}
