// Copyright 2020-2024 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package encoding provides encoding utilities.
package encoding

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// MarshalJSON marshals the value to JSON.
//
// HTML characters are not escaped. The output ends with a newline.
func MarshalJSON(v interface{}) ([]byte, error) {
	buffer := bytes.NewBuffer(nil)
	jsonEncoder := json.NewEncoder(buffer)
	jsonEncoder.SetEscapeHTML(false)
	if err := jsonEncoder.Encode(v); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// MarshalYAML marshals the value to YAML with two-space indentation.
func MarshalYAML(v interface{}) ([]byte, error) {
	buffer := bytes.NewBuffer(nil)
	yamlEncoder := yaml.NewEncoder(buffer)
	yamlEncoder.SetIndent(2)
	if err := yamlEncoder.Encode(v); err != nil {
		return nil, err
	}
	if err := yamlEncoder.Close(); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
