package command

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"navshortcut/internal/domain/entity"
	"navshortcut/internal/infra/label"
	mockUsecase "navshortcut/internal/mocks/usecase"
	"navshortcut/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testSummaries() []*entity.AddressSummary {
	return []*entity.AddressSummary{
		{Ref: "content://contacts/data/1", DisplayName: "Ada", FormattedAddress: "1 Main St", Type: entity.AddressTypeHome},
		{Ref: "content://contacts/data/2", DisplayName: "Ada", FormattedAddress: "2 Lake Rd", Type: entity.AddressTypeCustom, Label: "Cabin"},
	}
}

func TestPromptPicker_Pick(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantRef   string
		wantErr   error
		errSubstr string
	}{
		{name: "first", input: "1\n", wantRef: "content://contacts/data/1"},
		{name: "second without newline", input: " 2 ", wantRef: "content://contacts/data/2"},
		{name: "empty line cancels", input: "\n", wantErr: usecase.ErrPickCancelled},
		{name: "end of input cancels", input: "", wantErr: usecase.ErrPickCancelled},
		{name: "out of range", input: "3\n", errSubstr: `invalid choice "3"`},
		{name: "not a number", input: "home\n", errSubstr: `invalid choice "home"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addresses := mockUsecase.NewMockAddressUsecase(t)
			addresses.EXPECT().ListAddresses(mock.Anything).Return(testSummaries(), nil)

			var out bytes.Buffer
			picker := newPromptPicker(addresses, label.NewLabelService("en"), strings.NewReader(tt.input), &out)

			ref, err := picker.Pick(context.Background())

			assert.Contains(t, out.String(), "  1) Ada, Home: 1 Main St")
			assert.Contains(t, out.String(), "  2) Ada, Cabin: 2 Lake Rd")
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.errSubstr != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errSubstr)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantRef, ref)
			}
		})
	}
}

func TestPromptPicker_NoAddresses(t *testing.T) {
	addresses := mockUsecase.NewMockAddressUsecase(t)
	addresses.EXPECT().ListAddresses(mock.Anything).Return(nil, nil)

	picker := newPromptPicker(addresses, label.NewLabelService("en"), strings.NewReader("1\n"), &bytes.Buffer{})

	_, err := picker.Pick(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, usecase.ErrPickCancelled)
	assert.Contains(t, err.Error(), "import contacts first")
}
