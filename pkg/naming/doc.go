// Package naming derives Logical Names for icons and splits them into their
// parts.
//
// A Logical Name such as "amazon-ec2-64" is made of a stem ("amazon-ec2")
// and an optional size tier suffix ("-64"). The Base Concept is the stem
// with a leading brand token removed ("ec2"); every name sharing a Base
// Concept is a size variant of the same icon.
//
// Everything in this package is a pure string transform.
package naming
