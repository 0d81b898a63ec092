package command

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"navshortcut/internal/domain/service"
	"navshortcut/internal/errors"
	"navshortcut/internal/usecase"
)

// promptPicker lists the stored addresses and reads the user's choice from a line-oriented reader.
// An empty line or end of input cancels the pick.
type promptPicker struct {
	addresses usecase.AddressUsecase
	labels    service.LabelService
	in        *bufio.Reader
	out       io.Writer
}

func newPromptPicker(addresses usecase.AddressUsecase, labels service.LabelService, in io.Reader, out io.Writer) *promptPicker {
	return &promptPicker{
		addresses: addresses,
		labels:    labels,
		in:        bufio.NewReader(in),
		out:       out,
	}
}

// Pick implements usecase.Picker.
func (p *promptPicker) Pick(ctx context.Context) (string, error) {
	summaries, err := p.addresses.ListAddresses(ctx)
	if err != nil {
		return "", err
	}
	if len(summaries) == 0 {
		return "", errors.New("no addresses to choose from, import contacts first")
	}

	for i, summary := range summaries {
		fmt.Fprintf(p.out, "%3d) %s, %s: %s\n", i+1,
			summary.DisplayName, p.labels.TypeLabel(summary.Type, summary.Label), summary.FormattedAddress)
	}
	fmt.Fprint(p.out, "Choose an address (empty to cancel): ")

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", errors.Wrap(err, "failed to read choice")
	}

	choice := strings.TrimSpace(line)
	if choice == "" {
		return "", usecase.ErrPickCancelled
	}

	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(summaries) {
		return "", errors.Errorf("invalid choice %q", choice)
	}

	return summaries[n-1].Ref, nil
}

var _ usecase.Picker = (*promptPicker)(nil)
