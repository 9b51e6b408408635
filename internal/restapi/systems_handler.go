package restapi

import (
	"net/http"

	"residash.io/internal/models"
)

// systemsHandler lists every system present in the loaded telemetry,
// with record counts and time spans.
func (api *RestAPI) systemsHandler(w http.ResponseWriter, r *http.Request) {
	systems, err := api.TelemetryManager.Systems(r.Context())
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	data := models.SystemListData{Systems: []models.SystemReference{}}
	for _, system := range systems {
		data.Systems = append(data.Systems, models.NewSystemReference(system))
	}

	api.sendResponse(w, r, models.NewOKResponse(data))
}
