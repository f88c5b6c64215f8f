package main

import (
	"fmt"
	"io"

	"github.com/pkoukk/tiktoken-go"
	"go.uber.org/zap"
)

// reportTokens writes the payload's token count for the given model to
// the diagnostic stream. Best-effort: a missing tokenizer warns and
// skips the report instead of failing the run.
func reportTokens(payload, model string, w io.Writer, logger *zap.Logger) {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		logger.Warn("token report unavailable",
			zap.String("model", model), zap.Error(err))
		return
	}
	count := len(enc.Encode(payload, nil, nil))
	fmt.Fprintf(w, "~%d tokens (%s)\n", count, model)
}
