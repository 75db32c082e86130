package http

import (
	"net/http"

	"project_travelSafe/internal/entities"

	"github.com/gin-gonic/gin"
)

// Curated safety-facts payload served while no external facts provider
// is configured; the facts client can point at this very service.
var curatedSafetyFacts = entities.SafetyFacts{
	WomenSafety: entities.WomenSafety{
		Score:     8,
		SafeAreas: []string{"Downtown", "Tourist District", "Shopping Area"},
		Recommendations: []string{
			"Stay in well-lit areas",
			"Use official taxi services",
			"Keep valuables secure",
		},
		EmergencyContacts: map[string]string{
			"Police":           "911",
			"Women's Helpline": "1-800-XXX-XXXX",
		},
	},
	TransportSafety: entities.TransportSafety{
		RecommendedServices: []string{
			"Official City Taxis",
			"Metro System",
			"Registered Ride-sharing",
		},
		SafetyTips: []string{
			"Use official transport",
			"Share ride details",
			"Travel in groups at night",
		},
	},
}

type hotel struct {
	Name      string   `json:"name"`
	Rating    float64  `json:"rating"`
	Address   string   `json:"address"`
	Price     string   `json:"price"`
	Amenities []string `json:"amenities"`
}

var curatedHotels = []hotel{
	{
		Name:      "Test Hotel 1",
		Rating:    4.5,
		Address:   "123 Test Street",
		Price:     "$150/night",
		Amenities: []string{"WiFi", "Pool", "Gym"},
	},
	{
		Name:      "Test Hotel 2",
		Rating:    4.2,
		Address:   "456 Sample Road",
		Price:     "$120/night",
		Amenities: []string{"WiFi", "Restaurant"},
	},
}

// GetSafetyFacts serves destination safety facts.
func (h *Handler) GetSafetyFacts(c *gin.Context) {
	location := c.Query("location")
	if location == "" || !ValidateLength(location, 1, MaxLocationLength) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Location is required"})
		return
	}

	c.JSON(http.StatusOK, curatedSafetyFacts)
}

// GetHotels serves the hotels listing for a destination.
func (h *Handler) GetHotels(c *gin.Context) {
	location := c.Query("location")
	if location == "" || !ValidateLength(location, 1, MaxLocationLength) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Location is required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"hotels": curatedHotels})
}
