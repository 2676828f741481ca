package daemon

import (
	"bufio"
	"cfpredict/failure"
	"cfpredict/predict"
	"context"
	"fmt"
	"io"
	"strings"
)

// Predict runs one prediction and writes the outcome to out. Only transport
// faults are returned; lookup failures are reported in out.
func Predict(ctx context.Context, p *predict.Predictor, out io.Writer, handle, contestID string) error {
	res, err := p.Predict(ctx, handle, contestID)
	if err != nil {
		if failure.Is(err, failure.Transport) {
			return err
		}
		fmt.Fprintln(out, predict.UserMessage(err))
		return nil
	}
	fmt.Fprint(out, predict.FormatResult(strings.TrimSpace(handle), res))
	return nil
}

// CommandLine reads "handle contestId" lines from in until EOF.
func CommandLine(ctx context.Context, p *predict.Predictor, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		s := strings.TrimSpace(scanner.Text())
		if s == `` {
			continue
		}
		Task := strings.Fields(s)
		var handle, contestID string
		handle = Task[0]
		if len(Task) > 1 {
			contestID = Task[1]
		}
		if err := Predict(ctx, p, out, handle, contestID); err != nil {
			return err
		}
	}
	return scanner.Err()
}
