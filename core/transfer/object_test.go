package transfer_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"stock-sync/core/storage/mocks"
	"stock-sync/core/transfer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestObjectSource_Fetch(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "inventory").Return(true, nil)
		client.On("GetObject", mock.Anything, "inventory", "exports/stock.xlsx", mock.Anything).
			Return(io.NopCloser(bytes.NewReader([]byte("payload"))), nil)

		src := transfer.NewObjectSource(client, "inventory", "exports/stock.xlsx")
		data, err := src.Fetch(ctx)

		assert.NoError(t, err)
		assert.Equal(t, []byte("payload"), data)
		client.AssertExpectations(t)
	})

	t.Run("BucketMissing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "inventory").Return(false, nil)

		src := transfer.NewObjectSource(client, "inventory", "exports/stock.xlsx")
		_, err := src.Fetch(ctx)

		assert.ErrorIs(t, err, transfer.ErrTransfer)
		client.AssertNotCalled(t, "GetObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("RetrieveError", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "inventory").Return(true, nil)
		client.On("GetObject", mock.Anything, "inventory", "exports/stock.xlsx", mock.Anything).
			Return(nil, errors.New("connection reset"))

		src := transfer.NewObjectSource(client, "inventory", "exports/stock.xlsx")
		_, err := src.Fetch(ctx)

		assert.ErrorIs(t, err, transfer.ErrTransfer)
		assert.Contains(t, err.Error(), "connection reset")
	})
}

func TestConfig_IsValidOrigin(t *testing.T) {
	tests := []struct {
		name   string
		origin string
		want   bool
	}{
		{"FTP", transfer.OriginFTP, true},
		{"Object", transfer.OriginObject, true},
		{"Invalid", "sftp", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := transfer.Config{Origin: tt.origin}
			assert.Equal(t, tt.want, c.IsValidOrigin())
		})
	}
}
