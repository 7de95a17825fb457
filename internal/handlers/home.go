// internal/handlers/home.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type breadcrumb struct {
	Text string
	Href string
}

// GET /
func Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{
		"pageTitle": "Greyhound Racetrack Welfare Licence Application",
		"heading":   "Greyhound Racetrack Welfare Licence Application",
	})
}

// GET /contact
func Contact(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"pageTitle": "Contact Us",
		"heading":   "Contact Us",
		"breadcrumbs": []breadcrumb{
			{Text: "Home", Href: "/"},
			{Text: "Contact Us"},
		},
	})
}
