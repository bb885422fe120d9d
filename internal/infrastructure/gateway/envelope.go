package gateway

import "encoding/json"

// CodeSuccess code de negocio que indica éxito.
const CodeSuccess = 200

// Envelope envoltorio {code, message, data} de toda respuesta del API.
type Envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// OK true si es éxito de negocio.
func (e Envelope) OK() bool {
	return e.Code == CodeSuccess
}

func (e Envelope) hasData() bool {
	return len(e.Data) > 0 && string(e.Data) != "null"
}

// decodeEnvelope parsea el cuerpo; un cuerpo que no es JSON objeto devuelve ok=false.
func decodeEnvelope(body []byte) (Envelope, bool) {
	var env Envelope
	if len(body) == 0 {
		return env, false
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return Envelope{}, false
	}
	return env, true
}
