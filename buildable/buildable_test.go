package buildable

import (
	"testing"

	apperrors "github.com/authcorp/libs/go/fnkit/errors"
	"github.com/stretchr/testify/require"
)

type endpoint struct {
	host string
	port int
}

func (e endpoint) Builder() *endpointBuilder { return &endpointBuilder{} }

func (e endpoint) CloneBuilder() *endpointBuilder {
	return e.Builder().WithBuildable(e)
}

type endpointBuilder struct {
	host string
	port int
}

func (b *endpointBuilder) WithBuildable(e endpoint) *endpointBuilder {
	b.host, b.port = e.host, e.port
	return b
}

func (b *endpointBuilder) Port(port int) *endpointBuilder {
	b.port = port
	return b
}

func (b *endpointBuilder) Build() endpoint {
	if b.port < 0 {
		panic("negative port")
	}
	return endpoint{host: b.host, port: b.port}
}

func TestClone(t *testing.T) {
	e := endpoint{host: "localhost", port: 8080}
	got, err := Clone[endpoint, *endpointBuilder](e).Get()
	require.NoError(t, err)
	require.Equal(t, e, got)
}

func TestRebuild(t *testing.T) {
	e := endpoint{host: "localhost", port: 8080}

	got, err := Rebuild(e, func(b *endpointBuilder) *endpointBuilder { return b.Port(9090) }).Get()
	require.NoError(t, err)
	require.Equal(t, endpoint{host: "localhost", port: 9090}, got)
	require.Equal(t, 8080, e.port)
}

func TestRebuildPanicBecomesError(t *testing.T) {
	e := endpoint{host: "localhost", port: 8080}
	r := Rebuild(e, func(b *endpointBuilder) *endpointBuilder { return b.Port(-1) })
	require.True(t, apperrors.IsCode(r.Err(), apperrors.ErrCodeOperationFailed))
}
