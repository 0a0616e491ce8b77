package tracing

import (
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	jaegercfg "github.com/uber/jaeger-client-go/config"
)

// Init registers a jaeger tracer as the opentracing global. When agentAddr
// is empty the global stays a noop and spans cost nothing.
func Init(service, agentAddr string) (io.Closer, error) {
	if agentAddr == "" {
		return nil, nil
	}

	cfg := jaegercfg.Configuration{
		ServiceName: service,
		Sampler: &jaegercfg.SamplerConfig{
			Type:  "const",
			Param: 1,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LocalAgentHostPort: agentAddr,
		},
	}

	tracer, closer, err := cfg.NewTracer()
	if err != nil {
		return nil, errors.Wrap(err, "init tracer")
	}
	opentracing.SetGlobalTracer(tracer)
	return closer, nil
}
