package nominatim

// SearchAPIResult is one element of the array returned by the Nominatim
// search endpoint. Coordinates arrive as strings.
type SearchAPIResult struct {
	PlaceId     int      `json:"place_id"`
	Licence     string   `json:"licence"`
	OsmType     string   `json:"osm_type"`
	OsmId       int      `json:"osm_id"`
	Lat         string   `json:"lat"`
	Lon         string   `json:"lon"`
	Class       string   `json:"class"`
	Type        string   `json:"type"`
	PlaceRank   int      `json:"place_rank"`
	Importance  float64  `json:"importance"`
	Addresstype string   `json:"addresstype"`
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	Boundingbox []string `json:"boundingbox"`
}

// Match is the parsed best match handed to callers.
type Match struct {
	Latitude    float64
	Longitude   float64
	DisplayName string
}
