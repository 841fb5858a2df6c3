package registry_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/scanreg/registry"
)

//
// -----------------------------------------------------------------------------
// Fixtures
// -----------------------------------------------------------------------------

// EmailSender is a contract interface used across marker and descriptor tests.
type EmailSender interface {
	Send(to, body string) error
}

// Notifier is a second contract interface.
type Notifier interface {
	Notify(event string)
}

// SMTPMailer implements both EmailSender and Notifier.
type SMTPMailer struct{}

func (*SMTPMailer) Send(_, _ string) error { return nil }
func (*SMTPMailer) Notify(_ string)        {}

// Clock implements nothing; used for interface-free registrations.
type Clock struct{}

//
// -----------------------------------------------------------------------------
// NewMarker / defaults
// -----------------------------------------------------------------------------

// TestNewMarker_Defaults verifies the documented defaults: transient,
// auto-registered, no self-registration, no explicit contracts.
func TestNewMarker_Defaults(t *testing.T) {
	t.Parallel()

	m := registry.NewMarker()

	assert.Equal(t, registry.Transient, m.Lifetime())
	assert.True(t, m.AutoRegister())
	assert.False(t, m.RegisterSelf())
	assert.Nil(t, m.Contracts())
}

// TestNewMarker_ZeroValueMatchesDefaults verifies the zero Marker behaves
// exactly like NewMarker().
func TestNewMarker_ZeroValueMatchesDefaults(t *testing.T) {
	t.Parallel()

	var zero registry.Marker

	assert.Equal(t, registry.NewMarker().Lifetime(), zero.Lifetime())
	assert.Equal(t, registry.NewMarker().AutoRegister(), zero.AutoRegister())
	assert.Equal(t, registry.NewMarker().RegisterSelf(), zero.RegisterSelf())
}

// TestNewMarker_Options verifies each option flips exactly its own field.
func TestNewMarker_Options(t *testing.T) {
	t.Parallel()

	m := registry.NewMarker(
		registry.WithLifetime(registry.Scoped),
		registry.WithoutAutoRegister(),
		registry.WithRegisterSelf(),
	)

	assert.Equal(t, registry.Scoped, m.Lifetime())
	assert.False(t, m.AutoRegister())
	assert.True(t, m.RegisterSelf())
	assert.Nil(t, m.Contracts())
}

//
// -----------------------------------------------------------------------------
// WithContracts
// -----------------------------------------------------------------------------

// TestWithContracts_InterfacePointers verifies nil interface pointers resolve
// to the interface types, in declaration order.
func TestWithContracts_InterfacePointers(t *testing.T) {
	t.Parallel()

	m := registry.NewMarker(registry.WithContracts(
		(*EmailSender)(nil),
		(*Notifier)(nil),
	))

	contracts := m.Contracts()
	require.Len(t, contracts, 2)
	assert.Equal(t, reflect.TypeOf((*EmailSender)(nil)).Elem(), contracts[0])
	assert.Equal(t, reflect.TypeOf((*Notifier)(nil)).Elem(), contracts[1])
}

// TestWithContracts_SelfReference verifies an implementation pointer resolves
// to the implementation type itself.
func TestWithContracts_SelfReference(t *testing.T) {
	t.Parallel()

	m := registry.NewMarker(registry.WithContracts((*SMTPMailer)(nil)))

	contracts := m.Contracts()
	require.Len(t, contracts, 1)
	assert.Equal(t, reflect.TypeOf(&SMTPMailer{}), contracts[0])
}

// TestWithContracts_UntypedNil verifies an untyped nil reference is recorded
// and surfaced by Describe, not silently dropped.
func TestWithContracts_UntypedNil(t *testing.T) {
	t.Parallel()

	m := registry.NewMarker(registry.WithContracts((*EmailSender)(nil), nil))

	_, err := registry.Describe(&SMTPMailer{}, m, (*EmailSender)(nil))
	require.Error(t, err)

	var refErr *registry.InvalidContractRefError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, 1, refErr.Index)
	assert.ErrorIs(t, err, registry.ErrNilContractRef)
}

// TestContracts_ReturnsCopy verifies mutating the returned slice does not
// affect the marker.
func TestContracts_ReturnsCopy(t *testing.T) {
	t.Parallel()

	m := registry.NewMarker(registry.WithContracts((*EmailSender)(nil)))

	first := m.Contracts()
	first[0] = reflect.TypeOf(&Clock{})

	second := m.Contracts()
	require.Len(t, second, 1)
	assert.Equal(t, reflect.TypeOf((*EmailSender)(nil)).Elem(), second[0])
}
