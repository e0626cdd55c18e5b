// Package dehaze removes haze from a single image with the dark channel
// prior: DarkChannel, EstimateAtmosphericLight, BuildTransmission and
// Reconstruct are the four stages, each a pure function of its inputs.
package dehaze
