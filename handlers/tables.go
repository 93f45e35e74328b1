package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"tablebook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// availabilityCacheTTL bounds the staleness of cached availability answers.
// Availability is advisory anyway; the conditional ledger write is what
// actually guards against double booking.
const availabilityCacheTTL = 30 * time.Second

// TableAvailabilityHandler lists tables with their free windows for a
// location, date and party size. Answers are cached briefly in Redis keyed by
// the full query.
func (hb *HandlerBundle) TableAvailabilityHandler(c *gin.Context) {
	locationID := c.Query("locationId")
	date := c.Query("date")
	guests := 0
	if g := c.Query("guests"); g != "" {
		parsed, err := strconv.Atoi(g)
		if err != nil || parsed < 0 {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "guests must be a non-negative integer")
			return
		}
		guests = parsed
	}

	ctx := c.Request.Context()
	cacheKey := "availability:" + locationID + ":" + date + ":" + strconv.Itoa(guests)

	if hb.Cache != nil {
		if cached, err := hb.Cache.Get(ctx, cacheKey).Result(); err == nil {
			c.Data(http.StatusOK, "application/json", []byte(cached))
			return
		}
	}

	out, err := hb.Svc.AvailableTables(ctx, locationID, date, guests)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	body, err := json.Marshal(gin.H{"tables": out})
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "internal server error", err.Error())
		return
	}

	if hb.Cache != nil {
		if err := hb.Cache.Set(ctx, cacheKey, body, availabilityCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("failed to cache availability response",
				zap.String("key", cacheKey), zap.Error(err))
		}
	}

	c.Data(http.StatusOK, "application/json", body)
}
