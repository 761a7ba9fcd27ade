// Package config defines the format-agnostic configuration model for the
// application: the target device, the Home Assistant source, global
// settings, themes, and the screens with their widget assignments.
//
// The model is the single source of truth for the dashboard coordinator.
// The concrete HCL loader lives in the hclcfg subpackage.
package config
