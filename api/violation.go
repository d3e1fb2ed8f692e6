package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hydepark-apt/amenity-api/inspection"
)

// fetchInspections rolls up housing-inspection violations for an address
// into a structured report.
func (s *Server) fetchInspections(c *gin.Context) {
	report, err := s.aggregator.Aggregate(c.Request.Context(), c.Query("address"))
	if err != nil {
		if err == inspection.ErrMissingAddress {
			abortWithEncoding(c, http.StatusBadRequest, errorAddressRequired)
			return
		}
		log.WithField("address", c.Query("address")).Error("aggregate violations: ", err)
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
