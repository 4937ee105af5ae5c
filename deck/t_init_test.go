// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package deck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// cpfile copies a fixture into the scratch directory and returns the copy's
// path
func cpfile(tst *testing.T, src, dst string) string {
	b, err := io.ReadFile(src)
	if err != nil {
		tst.Fatalf("cannot read %q:\n%v", src, err)
	}
	dst = filepath.Join("/tmp/cordband", dst)
	err = os.MkdirAll(filepath.Dir(dst), 0777)
	if err != nil {
		tst.Fatalf("cannot create scratch directory:\n%v", err)
	}
	err = os.WriteFile(dst, b, 0644)
	if err != nil {
		tst.Fatalf("cannot write %q:\n%v", dst, err)
	}
	return dst
}
