package utils

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func MarshalJSON(in any) ([]byte, error) {
	return json.Marshal(in)
}

// PrettyJSON formata o valor com indentação para saídas de linha de comando
func PrettyJSON(in any) string {
	buffer, err := json.MarshalIndent(in, "", "\t")
	if err != nil {
		return ""
	}
	return string(buffer)
}

// WriteJSON escreve o corpo JSON com o status informado
func WriteJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}
