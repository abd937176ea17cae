// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

const (
	statsDelay = 60 * time.Second
	mega       = 1048576
)

// periodic memory statistics logging
type statistics struct {
	log *logger.L
}

func (s *statistics) Run(args interface{}, shutdown <-chan struct{}) {
	s.report()
	ticker := time.NewTicker(statsDelay)
	for {
		select {
		case <-ticker.C:
			s.report()
		case <-shutdown:
			ticker.Stop()
			return
		}
	}
}

func (s *statistics) report() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	text, err := json.Marshal(m)
	if nil != err {
		s.log.Errorf("marshal error: %s", err)
	} else {
		s.log.Infof("stats: %s", text)
	}
	a := m.Alloc / mega
	t := m.TotalAlloc / mega
	sys := m.Sys / mega
	s.log.Warnf("allocated: %d M  cumulative: %d M  OS virtual: %d M", a, t, sys)
}
