package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/richmd/pkg/langdetect"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"empty", "", ""},
		{"whitespace only", "   \n\t\n", ""},
		{"go package clause", "package main\n\nfunc main() {}\n", "go"},
		{"python def", "def handler(request):\n    return None\n", "python"},
		{"json object", `{"name": "value", "count": 3}`, "json"},
		{"sql select", "SELECT id, name FROM users WHERE id = 1;", "sql"},
		{"yaml mapping", "name: richmd\nversion: 1\nitems:\n- one\n- two\n", "yaml"},
		{"bash shebang", "#!/bin/bash\necho hi\n", "bash"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, langdetect.Detect([]byte(tt.content)))
		})
	}
}
