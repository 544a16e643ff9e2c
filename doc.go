/*
Package fifosim provides a clocked circuit simulator to drive synchronous
FIFOs and other clocked parts.

A Circuit runs its components in lockstep. Every tick has two phases: first
all components compute their next state from the committed state of the
circuit, then all of them commit. As a result, no component ever sees a value
produced by another component during the same tick, exactly like registers
sharing a clock edge.

Ready to use components are provided in the hwlib package, the FIFO itself is
in the fifo package.
*/
package fifosim
