package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/campus-aid/campus-aid-api/schema"
	"github.com/campus-aid/campus-aid-api/utils"
)

// listHelpCategories returns the help categories with display names
// localized by the Accept-Language header.
func (s *Server) listHelpCategories(c *gin.Context) {
	lang := c.GetHeader("Accept-Language")
	loc := utils.NewLocalizer(lang)

	type category struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	categories := make([]category, 0, len(schema.HelpCategories))
	for _, id := range schema.HelpCategories {
		name := id
		if localized, err := loc.Localize(&i18n.LocalizeConfig{
			MessageID: fmt.Sprintf("categories.%s.name", id),
		}); err == nil {
			name = localized
		} else {
			log.WithError(err).Warnf("can not localize category name")
		}
		categories = append(categories, category{ID: id, Name: name})
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
