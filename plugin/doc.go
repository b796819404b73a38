// Package plugin provides the abstract definition of a catalog integration plugin. Implementations of this package
// describe a third-party integration (e.g. Shopify, Linear), the actions it exposes, and the optional capabilities
// it supports, such as credential testing and codegen template resolution.
package plugin
