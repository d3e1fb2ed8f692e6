package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hydepark-apt/amenity-api/external/geocoder"
	"github.com/hydepark-apt/amenity-api/schema"
	"github.com/hydepark-apt/amenity-api/store"
)

const (
	insideHydeParkNote  = "Address is inside the perimeter of Hyde Park"
	outsideHydeParkNote = "Address is not inside the perimeter of the Hyde Park area, " +
		"so some functionalities of the application will not work, such as " +
		"inspections data or shuttle buses."
)

// fetchAllData geocodes a free-text address, ensures a property record
// exists for it, and returns the property id with its resolved location.
func (s *Server) fetchAllData(c *gin.Context) {
	address := c.PostForm("address")
	if address == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorAddressRequired)
		return
	}

	match, err := s.geocoder.Match(c.Request.Context(), address)
	if err != nil {
		if err == geocoder.ErrNoMatch {
			abortWithEncoding(c, http.StatusBadRequest, errorNoMatch)
			return
		}
		log.WithField("address", address).Error("geocoding service: ", err)
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	if match.City != s.settings.TargetCity {
		abortWithEncoding(c, http.StatusBadRequest, errorOutOfArea,
			fmt.Errorf("matched address resolves to %q", match.City))
		return
	}

	insideHydePark := s.settings.HydePark.Contains(match.Location.Longitude, match.Location.Latitude)
	notes := outsideHydeParkNote
	if insideHydePark {
		notes = insideHydeParkNote
	}

	property, err := s.mongoStore.CreateProperty(match.Address, match.Location)
	if err != nil {
		if err == store.ErrInvalidLocation {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidLocation, err)
			return
		}
		log.WithField("address", match.Address).Error("create property: ", err)
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cleaned_address":           property.Address,
		"property_id":               property.ID.Hex(),
		"has_data_inside_hyde_park": insideHydePark,
		"notes":                     notes,
		"address_geojson": schema.NewFeatureCollection([]schema.Feature{
			{
				Type:     "Feature",
				Geometry: property.Location,
				Properties: map[string]interface{}{
					"label": address,
				},
			},
		}),
	})
}
