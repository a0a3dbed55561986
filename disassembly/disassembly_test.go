// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/hazzlik/gopher8/disassembly"
	"github.com/hazzlik/gopher8/test"
)

func TestDisassemble(t *testing.T) {
	data := []byte{
		0x00, 0xe0, // CLS
		0x60, 0x1f, // LD V0, $1f
		0xd0, 0x15, // DRW V0, V1, $5
		0x12, 0x00, // JP $200
	}

	s := &strings.Builder{}
	disassembly.Disassemble(data, s)

	expected := "$200  00e0  CLS\n" +
		"$202  601f  LD V0, $1f\n" +
		"$204  d015  DRW V0, V1, $5\n" +
		"$206  1200  JP $200\n"

	test.Equate(t, s.String(), expected)
}

func TestDisassembleDataWords(t *testing.T) {
	data := []byte{
		0x50, 0x01, // no decoding (5xy1 is not an instruction)
		0x80, 0x0f, // no decoding (8xyf is not an instruction)
	}

	s := &strings.Builder{}
	disassembly.Disassemble(data, s)

	expected := "$200  5001  DW $5001\n" +
		"$202  800f  DW $800f\n"

	test.Equate(t, s.String(), expected)
}

func TestDisassembleOddLength(t *testing.T) {
	data := []byte{
		0x00, 0xe0, // CLS
		0xaa, // trailing byte
	}

	s := &strings.Builder{}
	disassembly.Disassemble(data, s)

	expected := "$200  00e0  CLS\n" +
		"$202  aa    DB $aa\n"

	test.Equate(t, s.String(), expected)
}
