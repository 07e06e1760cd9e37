package ncnews

import (
	_ "embed"
	"encoding/json"
)

// endpoints describes every route served by the API, as returned by GET /api.
//
//go:embed endpoints.json
var endpoints json.RawMessage
