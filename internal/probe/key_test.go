package probe

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeKey struct {
	value    string
	valueErr error
	closeErr error
	closes   int
}

func (k *fakeKey) GetStringValue(string) (string, uint32, error) {
	return k.value, 1, k.valueErr
}

func (k *fakeKey) Close() error {
	k.closes++
	return k.closeErr
}

func openerFor(k *fakeKey) keyOpener {
	return func(string) (valueKey, error) { return k, nil }
}

func TestReadVersion_Success(t *testing.T) {
	key := &fakeKey{value: "v14.29.30133.00"}
	version, err := readVersion(openerFor(key), `SOFTWARE\x`, "Version")
	require.NoError(t, err)
	assert.Equal(t, "v14.29.30133.00", version)
	assert.Equal(t, 1, key.closes)
}

func TestReadVersion_ClosesOnEveryPath(t *testing.T) {
	tests := []struct {
		name    string
		key     *fakeKey
		wantErr string
	}{
		{"value missing", &fakeKey{valueErr: errors.New("not found")}, "read registry value"},
		{"empty value", &fakeKey{value: " "}, "is empty"},
		{"close fails", &fakeKey{value: "v14.2", closeErr: errors.New("bad handle")}, "close registry key"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			version, err := readVersion(openerFor(tt.key), `SOFTWARE\x`, "Version")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Empty(t, version)
			assert.Equal(t, 1, tt.key.closes)
		})
	}
}

func TestReadVersion_CloseErrorDoesNotMaskReadError(t *testing.T) {
	key := &fakeKey{valueErr: errors.New("type mismatch"), closeErr: errors.New("bad handle")}
	_, err := readVersion(openerFor(key), `SOFTWARE\x`, "Version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "type mismatch")
	assert.Equal(t, 1, key.closes)
}

func TestReadVersion_OpenFailureHasNothingToClose(t *testing.T) {
	open := func(string) (valueKey, error) { return nil, errors.New("access denied") }
	_, err := readVersion(open, `SOFTWARE\x`, "Version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open registry key")
}
