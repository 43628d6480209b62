package config

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// codec converts a Config to and from its on-disk encoding. Unknown fields are ignored
// when decoding.
type codec interface {
	Marshal(c *Config) ([]byte, error)
	Unmarshal(data []byte, c *Config) error
}

// codecFor picks the encoding from the file extension. Anything that is not .toml is
// treated as JSON.
func codecFor(path string) codec {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return tomlCodec{}
	}
	return jsonCodec{}
}

type jsonCodec struct{}

func (jsonCodec) Marshal(c *Config) ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (jsonCodec) Unmarshal(data []byte, c *Config) error {
	return json.Unmarshal(data, c)
}

type tomlCodec struct{}

func (tomlCodec) Marshal(c *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (tomlCodec) Unmarshal(data []byte, c *Config) error {
	return toml.Unmarshal(data, c)
}
