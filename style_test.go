package vxpage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttributeHas(t *testing.T) {
	attr := AttrBold | AttrReverse
	assert.True(t, attr.Has(AttrBold))
	assert.True(t, attr.Has(AttrBold|AttrReverse))
	assert.False(t, attr.Has(AttrDim))
	assert.False(t, attr.Has(AttrBold|AttrDim))
}
