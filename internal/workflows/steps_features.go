// Where: internal/workflows/steps_features.go
// What: Feature scaffold steps: auth, payments, realtime.
// Why: Each writes a provider stub plus the env keys the provider needs.
package workflows

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/stackforge-dev/stackforge/internal/fileops"
	"github.com/stackforge-dev/stackforge/internal/generator"
	"github.com/stackforge-dev/stackforge/internal/scaffold"
)

// authStep writes the auth provider configuration and its env keys.
type authStep struct{}

func (authStep) Name() string                    { return "auth" }
func (authStep) Enabled(a scaffold.Answers) bool { return a.Auth != scaffold.AuthNone }
func (authStep) Fatal() bool                     { return false }

func (s authStep) Run(ctx context.Context, p *Project) StepResult {
	a := p.Answers

	config, err := generator.RenderAuthConfig(a)
	if err != nil {
		return failure(s.Name(), err)
	}

	var path string
	switch a.Auth {
	case scaffold.AuthAuthJS:
		path = p.WebPath("src", "auth.ts")
		p.Env.SetSecret("AUTH_SECRET", "")
	case scaffold.AuthClerk:
		if a.Frontend == scaffold.FrontendNextJS {
			path = p.WebPath("src", "middleware.ts")
		} else {
			path = p.WebPath("src", "lib", "clerk.ts")
		}
		p.Env.Set("CLERK_PUBLISHABLE_KEY", "")
		p.Env.SetSecret("CLERK_SECRET_KEY", "")
	case scaffold.AuthLucia:
		path = p.WebPath("src", "lib", "auth.ts")
		p.Env.SetSecret("AUTH_SECRET", "")
	}

	if err := fileops.WriteFile(path, config); err != nil {
		return failure(s.Name(), err)
	}
	return success(s.Name(), fmt.Sprintf("%s configured", a.Auth))
}

// paymentsStep writes the payment provider client and its secret env keys.
type paymentsStep struct{}

func (paymentsStep) Name() string                    { return "payments" }
func (paymentsStep) Enabled(a scaffold.Answers) bool { return a.Payments != scaffold.PaymentsNone }
func (paymentsStep) Fatal() bool                     { return false }

func (s paymentsStep) Run(ctx context.Context, p *Project) StepResult {
	a := p.Answers

	client, err := generator.RenderPaymentsClient(a)
	if err != nil {
		return failure(s.Name(), err)
	}
	if err := fileops.WriteFile(p.WebPath("src", "lib", "payments.ts"), client); err != nil {
		return failure(s.Name(), err)
	}

	switch a.Payments {
	case scaffold.PaymentsStripe:
		p.Env.SetSecret("STRIPE_SECRET_KEY", "")
		p.Env.SetSecret("STRIPE_WEBHOOK_SECRET", "")
	case scaffold.PaymentsLemonSqueezy:
		p.Env.SetSecret("LEMONSQUEEZY_API_KEY", "")
	}

	return success(s.Name(), fmt.Sprintf("%s client scaffolded", a.Payments))
}

// realtimeStep writes the realtime transport stub. Socket.IO attaches to the
// API server, Pusher lives client-side with its credentials in env.
type realtimeStep struct{}

func (realtimeStep) Name() string                    { return "realtime" }
func (realtimeStep) Enabled(a scaffold.Answers) bool { return a.Realtime != scaffold.RealtimeNone }
func (realtimeStep) Fatal() bool                     { return false }

func (s realtimeStep) Run(ctx context.Context, p *Project) StepResult {
	a := p.Answers

	stub, err := generator.RenderRealtimeStub(a)
	if err != nil {
		return failure(s.Name(), err)
	}

	var path string
	switch a.Realtime {
	case scaffold.RealtimeSocketIO:
		srcDir := p.APIDir()
		if a.IsMonorepo() {
			srcDir = filepath.Join(srcDir, "src")
		}
		path = p.Path(srcDir, "realtime.ts")
	case scaffold.RealtimePusher:
		path = p.WebPath("src", "lib", "realtime.ts")
		p.Env.Set("PUSHER_APP_ID", "")
		p.Env.Set("PUSHER_KEY", "")
		p.Env.SetSecret("PUSHER_SECRET", "")
		p.Env.Set("PUSHER_CLUSTER", "us2")
	}

	if err := fileops.WriteFile(path, stub); err != nil {
		return failure(s.Name(), err)
	}
	return success(s.Name(), fmt.Sprintf("%s stub scaffolded", a.Realtime))
}
