package param

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/schema"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.SetAliasTag("json")
	decoder.IgnoreUnknownKeys(true)
}

// Binding binds query values on GET requests and the json body otherwise.
// Field names follow the json tag either way.
func Binding(r *http.Request, v interface{}) error {
	if r.Method == http.MethodGet {
		if err := r.ParseForm(); err != nil {
			return err
		}

		return decoder.Decode(v, r.Form)
	}

	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
