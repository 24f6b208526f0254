package utils

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// CompactJson serializa um valor em JSON compacto para uso em células de
// relatório. Falhas de serialização viram uma string vazia, nunca erro.
func CompactJson(in any) string {
	buffer, err := json.Marshal(in)
	if err != nil {
		return ""
	}

	return string(buffer)
}
