package controllers

import (
	"net/http"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/ctrlz-wear/ctrlz-api/config"
	"github.com/ctrlz-wear/ctrlz-api/pkg/database"
	"github.com/ctrlz-wear/ctrlz-api/pkg/response"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

// Root handles GET /, a plain liveness banner.
func (c *HealthController) Root(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"message": "CTRL-Z API online"})
}

// Test handles GET /test, a store-introspection report for quick deployment
// debugging: whether the connection config is present, whether Mongo answers,
// and the first collection names it can see.
func (c *HealthController) Test(w http.ResponseWriter, r *http.Request) {
	report := map[string]interface{}{
		"backend":           "running",
		"database":          "not available",
		"database_url_set":  config.DatabaseURL() != "",
		"database_name_set": config.DatabaseName() != "",
		"connection_status": "not connected",
		"collections":       []string{},
	}

	if db := database.DB; db != nil {
		report["connection_status"] = "connected"

		names, err := db.ListCollectionNames(r.Context(), bson.M{})
		if err != nil {
			report["database"] = "connected but error: " + err.Error()
		} else {
			if len(names) > 10 {
				names = names[:10]
			}
			report["collections"] = names
			report["database"] = "connected"
		}
	}

	response.JSON(w, http.StatusOK, report)
}
