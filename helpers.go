package ncnews

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/mitchellh/mapstructure"
)

var NowFunc func() time.Time = time.Now

// maxBodySize caps the size of JSON request bodies.
const maxBodySize = 1 << 20

// decodeInput copies raw into the struct pointed by out. Types must match
// exactly, a string is never turned into a number or the other way around.
func decodeInput(raw map[string]interface{}, out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: false,
	})
	if err != nil {
		return err
	}

	return dec.Decode(raw)
}

// readBody decodes the request body as a JSON object. An empty body is an empty object.
func readBody(req *http.Request) (map[string]interface{}, error) {
	raw := map[string]interface{}{}
	if req.Body == nil {
		return raw, nil
	}

	err := json.NewDecoder(io.LimitReader(req.Body, maxBodySize)).Decode(&raw)
	if err == io.EOF {
		return raw, nil
	}
	if err != nil {
		return nil, fmt.Errorf("malformed json body: %w", err)
	}

	return raw, nil
}

// parseID reads a numeric identifier from the route parameters.
func parseID(params httprouter.Params, name string) (int64, error) {
	v := params.ByName(name)
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, InvalidInput(fmt.Errorf("%s %q is not a number", name, v))
	}

	return id, nil
}
