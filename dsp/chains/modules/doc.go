// Package modules groups the stock kernels shipped with chains. Each
// subpackage exports a Kernel type to pass to chains.Declare and one
// chains.ParamID per declared parameter.
package modules
