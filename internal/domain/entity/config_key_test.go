package entity_test

import (
	"testing"

	"github.com/bnema/sash/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestConfigKeyInfo_Constraint(t *testing.T) {
	assert.Equal(t, "Values: debug, info", entity.ConfigKeyInfo{Values: []string{"debug", "info"}, Range: "ignored"}.Constraint())
	assert.Equal(t, "Range: 1-240", entity.ConfigKeyInfo{Range: "1-240"}.Constraint())
	assert.Empty(t, entity.ConfigKeyInfo{Key: "logging.file"}.Constraint())
}
