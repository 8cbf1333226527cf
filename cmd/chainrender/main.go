// Command chainrender compiles the stock chain presets and renders them to
// WAV files or prints their controls and frequency response.
//
// Examples:
//
//	chainrender list
//	chainrender controls named
//	chainrender render phasor --out phasor.wav --seconds 2 --set "Frequency=220"
//	chainrender render filter --input noise --set "Type=2" --set "Frequency=500" --out hp.wav
//	chainrender response filter --fft-size 2048
package main

func main() {
	Execute()
}
