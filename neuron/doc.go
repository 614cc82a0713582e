/*
Package neuron defines the per-neuron state of the integer-valued
leaky-integrate-and-fire network.

# Overview

A Neuron carries only the bookkeeping a single tick's integration and
firing step needs: membrane voltage, refractory countdown, the pending
input accumulated during the previous tick's propagation phase, a leak
countdown, and a short rolling history of which synapses delivered a
conducting spike into it on each of the last few ticks.

# Role is not a subtype

Sensor, motor, sensor-fanout, motor-fanin, and hidden neurons are all the
same Neuron type. Which behavior applies to a given index is decided by the
caller (the brain package) by consulting params.Parameters' role-range
helpers, never by a Go type switch or embedded subtype. This keeps the
dense []Neuron slice homogeneous and trivially serializable.
*/
package neuron
