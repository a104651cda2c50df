package server

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"strconv"

	srtm "github.com/suprasteel/easy-srtm"
)

type elevationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Elevation int16   `json:"elevation"`
}

// HandleElevation serves GET /elevation?lat=...&lng=..., returning the
// elevation in meters at the nearest sample as JSON. A coordinate
// whose tile is not on disk yields 404; a tile with an illegal size
// yields 422.
func HandleElevation(service *srtm.ElevationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lat, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
		if err != nil {
			http.Error(w, "invalid or missing lat", http.StatusBadRequest)
			return
		}
		lng, err := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
		if err != nil {
			http.Error(w, "invalid or missing lng", http.StatusBadRequest)
			return
		}

		elevation, err := service.Elevation(lat, lng)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			http.Error(w, "no tile for coordinate", http.StatusNotFound)
			return
		case errors.Is(err, srtm.ErrUnsupportedSize):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		case err != nil:
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(elevationResponse{
			Latitude:  lat,
			Longitude: lng,
			Elevation: elevation,
		})
	}
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
