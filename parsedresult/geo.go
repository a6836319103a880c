package parsedresult

import (
	"fmt"
	"strconv"
	"strings"

	barscan "github.com/rastergrid/barscan"
)

// GeoParsedResult carries a "geo:" URI's latitude, longitude, and optional
// altitude.
type GeoParsedResult struct {
	Latitude  float64
	Longitude float64
	Altitude  float64
	Query     string
}

func (*GeoParsedResult) Type() Type { return TypeGeo }

func (r *GeoParsedResult) DisplayResult() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%f, %f", r.Latitude, r.Longitude)
	if r.Altitude != 0 {
		fmt.Fprintf(&b, ", %fm", r.Altitude)
	}
	if r.Query != "" {
		fmt.Fprintf(&b, "\n%s", r.Query)
	}
	return b.String()
}

// parseGeo recognizes "geo:lat,lon[,alt][?query]" URIs, per RFC 5870.
func parseGeo(result *barscan.Result) ParsedResult {
	rawText := result.Text
	if !strings.HasPrefix(strings.ToLower(rawText), "geo:") {
		return nil
	}
	body := rawText[len("geo:"):]

	query := ""
	if q := strings.Index(body, "?"); q >= 0 {
		query = body[q+1:]
		body = body[:q]
	}

	parts := strings.Split(body, ",")
	if len(parts) < 2 {
		return nil
	}
	lat, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return nil
	}
	lon, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return nil
	}
	var alt float64
	if len(parts) >= 3 {
		alt, err = strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return nil
		}
	}

	return &GeoParsedResult{Latitude: lat, Longitude: lon, Altitude: alt, Query: query}
}
