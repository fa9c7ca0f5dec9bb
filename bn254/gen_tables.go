//go:build ignore

// gen_tables.go writes tables_gen.go. Run with:
//
//	go run gen_tables.go
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"

	"github.com/holiman/uint256"
)

var modulus = uint256.MustFromHex("0x30644e72e131a029b85045b68181585d2833e84879b9709143e1f593f0000001")

// roundConstants are the Skyscraper round constants, index 0 and 17 unused.
var roundConstants = [18]string{
	"0x0",
	"0x276b1823ea6d7667081dd27906c83855873125f708a7d269903c4324270bd744",
	"0x0cf02bd758a484a6751417914c1a5a18e29d79f3d99e2cb77ac8edbb4b378d71",
	"0x25b0e03f18ede5440eb7730d63481db01c3f8e297cca387dfa7adc6769e5bc36",
	"0x002882fcbe14ae70955a32e849af80bc33440b966887340457847e652f03cfb7",
	"0x039ad8571e2b7a9c12ef02b47f1277ba29989c3e1b37d3c1979231396257d4d7",
	"0x1142d5410fc1fc1a4cd48043712f7b29a72a6bc5e6ba2d2bb5b48465abbb7887",
	"0x1d78439f69bc0bec44f2c93598f289f717cb3594047999b27ab2c156059075d3",
	"0x258588a508f4ff828ddfb8a1ac6f162836ef35a3d55c48b105d7a965138b8edb",
	"0x13087879d2f514fe9bc43f6984e4c1579a7367d69a09a95b1596fb9afccb49e9",
	"0x17dadee898c452322e9e1eea4bc88a8ee1d72f89ed868012295ccd233b4109fa",
	"0x295c6d1546e7f4a6b8e90b1034d5de31b75834b430e9130e9a8590b4aa1f486f",
	"0x1288ca0e1d3ed4464ef96a2ba1720f2d07699ef305b92fc3850adcb74c6eb892",
	"0x17563b4d1ae023f3e5c81e8991c986628ccad30769371c6901960f9349d1b5ee",
	"0x2869043be91a1eea86815a945815f030a1cb0a3add977bc96ba01e9476b32917",
	"0x14941f0aff59e79a5d090056095d96cf7475d34f47f414e781776c885511d976",
	"0x1ce337a190f4379f318356758a39005abb7142c3cce4fd48bc40b4fd8fc8c034",
	"0x0",
}

func limbs(v *uint256.Int) string {
	return fmt.Sprintf("{0x%016x, 0x%016x, 0x%016x, 0x%016x}", v[0], v[1], v[2], v[3])
}

func main() {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "// Code generated by gen_tables.go. DO NOT EDIT.")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "package bn254")
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "// Modulus holds k*p for k = 0..5.")
	fmt.Fprintln(&buf, "var Modulus = [6]Element{")
	for k := uint64(0); k < 6; k++ {
		v := new(uint256.Int).Mul(modulus, uint256.NewInt(k))
		fmt.Fprintf(&buf, "\t%s,\n", limbs(v))
	}
	fmt.Fprintln(&buf, "}")
	fmt.Fprintln(&buf)

	rc := make([]*uint256.Int, len(roundConstants))
	for i, s := range roundConstants {
		rc[i] = uint256.MustFromHex(s)
	}

	fmt.Fprintln(&buf, "// RoundConstants are the Skyscraper round constants as canonical field")
	fmt.Fprintln(&buf, "// elements. Rounds 0 and 17 add no constant.")
	fmt.Fprintln(&buf, "var RoundConstants = [18]Element{")
	for _, v := range rc {
		fmt.Fprintf(&buf, "\t%s,\n", limbs(v))
	}
	fmt.Fprintln(&buf, "}")
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "// ModulusNMinusRC holds (k*p - RoundConstants[i]) mod 2^256. Subtracting")
	fmt.Fprintln(&buf, "// an entry with wrapping arithmetic removes k*p and adds the round constant")
	fmt.Fprintln(&buf, "// in one pass.")
	fmt.Fprintln(&buf, "var ModulusNMinusRC = [6][18]Element{")
	for k := uint64(0); k < 6; k++ {
		kp := new(uint256.Int).Mul(modulus, uint256.NewInt(k))
		fmt.Fprintln(&buf, "\t{")
		for _, c := range rc {
			v := new(uint256.Int).Sub(kp, c)
			fmt.Fprintf(&buf, "\t\t%s,\n", limbs(v))
		}
		fmt.Fprintln(&buf, "\t},")
	}
	fmt.Fprintln(&buf, "}")

	out, err := format.Source(buf.Bytes())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := os.WriteFile("tables_gen.go", out, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
