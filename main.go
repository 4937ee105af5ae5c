// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// cordband authors graded compression band fields for finite element models
// of the spinal cord.
package main

import "github.com/brassc/cordband/cmd"

func main() {
	cmd.Execute()
}
