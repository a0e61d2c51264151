// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package host

import (
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"

	"github.com/ava-labs/evmtracer/utils/logging"
)

var _ Host = (*writer)(nil)

type writer struct {
	log logging.Logger
	w   io.Writer
}

// NewWriter returns a Host that writes one line per notification to [w],
// formatted as the call name followed by the hex encoded payload. Write
// failures are logged and otherwise ignored.
func NewWriter(log logging.Logger, w io.Writer) Host {
	return &writer{
		log: log,
		w:   w,
	}
}

func (w *writer) CallListNew() {
	w.write(CallListNew, nil)
}

func (w *writer) EvmEvent(payload []byte) {
	w.write(EvmEvent, payload)
}

func (w *writer) GasometerEvent(payload []byte) {
	w.write(GasometerEvent, payload)
}

func (w *writer) RuntimeEvent(payload []byte) {
	w.write(RuntimeEvent, payload)
}

func (w *writer) write(kind Kind, payload []byte) {
	var err error
	if payload == nil {
		_, err = fmt.Fprintln(w.w, kind)
	} else {
		_, err = fmt.Fprintln(w.w, kind, hexutil.Encode(payload))
	}
	if err != nil {
		w.log.Warn("failed to write host notification",
			zap.Stringer("kind", kind),
			zap.Error(err),
		)
	}
}
