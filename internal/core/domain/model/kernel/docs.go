// Package kernel holds the value objects shared by every aggregate: the UUID
// identifier and the Clock used to stamp creation and update times.
package kernel
