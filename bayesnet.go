/*
Package bayesnet estimates posterior distributions on Bayesian networks
of boolean random variables by sampling. It offers direct sampling,
rejection sampling and likelihood weighting.
*/
package bayesnet

import (
	"math/rand/v2"
	"time"

	"github.com/pbanos/bayesnet/bitvector"
	"github.com/pbanos/bayesnet/estimate"
	"github.com/pbanos/bayesnet/metrics"
	"github.com/pbanos/bayesnet/network"
	"github.com/pbanos/bayesnet/query"
	"github.com/pbanos/bayesnet/weighted"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// Logger is the interface wrapping the Logf method, used
// to report on inference runs.
type Logger interface {
	Logf(format string, a ...interface{})
}

/*
Sampler runs inference algorithms on a network. It holds the random
number generator and the assignment every sample is drawn into, so it
must not be used by several goroutines at once. The network is not
modified and can back any number of samplers, one per goroutine.
*/
type Sampler struct {
	network    *network.Network
	rnd        *rand.Rand
	assignment network.Assignment
	// Logger, when not nil, receives a summary of every run
	Logger Logger
}

// draw fills the sampler's assignment with one sample and returns the
// values of the query variables, the weight of the sample and whether
// it is consistent with the evidence.
type draw func(*plan) (bitvector.BitVector, float64, bool)

/*
NewSampler takes a network and a source of randomness and returns a
Sampler for the network. Samplers built with sources seeded alike draw
the same samples.
*/
func NewSampler(n *network.Network, src rand.Source) *Sampler {
	return &Sampler{
		network:    n,
		rnd:        rand.New(src),
		assignment: n.NewAssignment(),
	}
}

// Network returns the network the sampler draws samples from
func (s *Sampler) Network() *network.Network {
	return s.network
}

/*
Infer takes an algorithm, a query and a number of samples and runs the
algorithm with them. See DirectSample, RejectionSample and
LikelihoodWeighting.
*/
func (s *Sampler) Infer(a Algorithm, q *query.Query, numSamples int) (*estimate.Estimate, error) {
	switch a {
	case DirectSampling:
		return s.DirectSample(q, numSamples)
	case RejectionSampling:
		return s.RejectionSample(q, numSamples)
	case LikelihoodWeighting:
		return s.LikelihoodWeighting(q, numSamples)
	default:
		return nil, errors.Wrapf(ErrUnknownAlgorithm, "%d", a)
	}
}

/*
DirectSample takes a query and a number of samples and estimates the
prior joint distribution of the query variables by sampling every
variable of the network from its conditional distribution. Evidence
in the query is ignored.
*/
func (s *Sampler) DirectSample(q *query.Query, numSamples int) (*estimate.Estimate, error) {
	return s.run(DirectSampling, q, numSamples, s.drawPrior)
}

/*
RejectionSample takes a query and a number of samples and estimates
the joint distribution of the query variables given the evidence by
sampling like DirectSample and discarding every sample that contradicts
the evidence. Discarded samples are not replaced, so the estimate may
rest on far fewer samples than requested; if all are discarded
ErrNoSamplesAccepted is returned.
*/
func (s *Sampler) RejectionSample(q *query.Query, numSamples int) (*estimate.Estimate, error) {
	return s.run(RejectionSampling, q, numSamples, s.drawRejecting)
}

/*
LikelihoodWeighting takes a query and a number of samples and estimates
the joint distribution of the query variables given the evidence by
clamping evidence variables to their observed values, sampling the rest
and weighting each sample by the likelihood of the evidence given the
sampled values: the product, over evidence variables, of the probability
of each taking its observed value. If every sample weighs 0,
ErrNoSamplesAccepted is returned.
*/
func (s *Sampler) LikelihoodWeighting(q *query.Query, numSamples int) (*estimate.Estimate, error) {
	return s.run(LikelihoodWeighting, q, numSamples, s.drawWeighted)
}

func (s *Sampler) run(a Algorithm, q *query.Query, numSamples int, d draw) (*estimate.Estimate, error) {
	if numSamples <= 0 {
		return nil, errors.Wrapf(ErrInvalidSampleCount, "%s sampling with %d samples", a, numSamples)
	}
	p, err := newPlan(s.network, q)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	ws := weighted.New()
	ess := &sampleSize{}
	var accepted int
	for i := 0; i < numSamples; i++ {
		sample, w, ok := d(p)
		if !ok || w == 0 {
			continue
		}
		ws.Increment(sample, w)
		accepted++
		ess.add(w)
	}
	elapsed := time.Since(start)
	metrics.SamplesDrawn.WithLabelValues(a.String()).Add(float64(numSamples))
	metrics.SamplesRejected.WithLabelValues(a.String()).Add(float64(numSamples - accepted))
	metrics.InferenceDuration.WithLabelValues(a.String()).Observe(elapsed.Seconds())
	s.logf("%s sampling for %v: %d of %d samples accepted in %v", a, q, accepted, numSamples, elapsed)
	err = ws.Normalize()
	if err != nil {
		return nil, errors.Wrapf(err, "%s sampling for %v with %d samples", a, q, numSamples)
	}
	evidence := make(map[string]bool, len(q.EvidenceValues))
	for k, v := range q.EvidenceValues {
		evidence[k] = v
	}
	return &estimate.Estimate{
		Algorithm:        a.String(),
		Variables:        p.variables,
		Evidence:         evidence,
		Distribution:     ws,
		Samples:          numSamples,
		Accepted:         accepted,
		EffectiveSamples: ess.effective(),
		CreatedAt:        time.Now().UTC(),
	}, nil
}

func (s *Sampler) drawPrior(p *plan) (bitvector.BitVector, float64, bool) {
	sample := bitvector.New(len(p.variables))
	var pos int
	for i, n := range s.network.Nodes() {
		v := n.SampleAndSet(s.assignment, s.rnd)
		if p.isQuery(i) {
			sample.Set(pos, v)
			pos++
		}
	}
	return sample, 1, true
}

func (s *Sampler) drawRejecting(p *plan) (bitvector.BitVector, float64, bool) {
	sample := bitvector.New(len(p.variables))
	var pos int
	for i, n := range s.network.Nodes() {
		v := n.SampleAndSet(s.assignment, s.rnd)
		if p.isEvidence(i) && v != p.evidence[i] {
			return sample, 0, false
		}
		if p.isQuery(i) {
			sample.Set(pos, v)
			pos++
		}
	}
	return sample, 1, true
}

func (s *Sampler) drawWeighted(p *plan) (bitvector.BitVector, float64, bool) {
	sample := bitvector.New(len(p.variables))
	var pos int
	weight := 1.0
	for i, n := range s.network.Nodes() {
		var v bool
		if p.isEvidence(i) {
			v = p.evidence[i]
			n.SetValue(s.assignment, v)
			weight *= likelihood(n.Probability(s.assignment), v)
		} else {
			v = n.SampleAndSet(s.assignment, s.rnd)
		}
		if p.isQuery(i) {
			sample.Set(pos, v)
			pos++
		}
	}
	return sample, weight, true
}

// likelihood returns the probability of a variable that is true with
// probability p taking the value v.
func likelihood(p float64, v bool) float64 {
	var x float64
	if v {
		x = 1
	}
	return distuv.Bernoulli{P: p}.Prob(x)
}

/*
sampleSize accumulates the weights of accepted samples to compute the
effective sample size (Σw)² / Σw². Sums are kept relative to the
largest weight seen, so tiny weights neither underflow Σw² to 0 nor
turn the ratio into NaN.
*/
type sampleSize struct {
	max, sum, sumSq float64
}

func (ss *sampleSize) add(w float64) {
	if w > ss.max {
		r := ss.max / w
		ss.sum *= r
		ss.sumSq *= r * r
		ss.max = w
	}
	r := w / ss.max
	ss.sum += r
	ss.sumSq += r * r
}

func (ss *sampleSize) effective() float64 {
	if ss.sumSq == 0 {
		return 0
	}
	return ss.sum * ss.sum / ss.sumSq
}

func (s *Sampler) logf(format string, a ...interface{}) {
	if s.Logger != nil {
		s.Logger.Logf(format, a...)
	}
}
