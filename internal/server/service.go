// Copyright 2026 The Skylift Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package server

import (
	"context"

	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/anypb"

	"github.com/skylift/skylift/internal/cache"
	"github.com/skylift/skylift/internal/codegen"
	"github.com/skylift/skylift/internal/compiler"
	"github.com/skylift/skylift/internal/pipeline"
	"github.com/skylift/skylift/internal/session"
	"github.com/skylift/skylift/internal/target"
	"github.com/skylift/skylift/internal/version"
	skyliftv1 "github.com/skylift/skylift/rpc/skylift/v1"
)

// Service implements skyliftv1.CompilerServer, wiring a session store, a
// Parser/Generator pair, and an artifact cache together behind the wire
// contract. Grounded on
// original_source/crates/skylift-server/src/server/service.rs's
// CompilerService struct and its async_trait Compiler impl.
type Service struct {
	skyliftv1.UnimplementedCompilerServer

	sessions *session.Store
	parser   codegen.Parser
	cache    *cache.Cache
}

// NewService constructs a Service with a fresh, empty session store. A nil
// cacheStore disables caching outright (every BuildModule call runs the
// pipeline); pass cache.Disabled{} explicitly when that's the intent
// (spec.md §9 "StrictFlags"/cache feature gate).
func NewService(parser codegen.Parser, cacheStore cache.Store) *Service {
	if cacheStore == nil {
		cacheStore = cache.Disabled{}
	}
	return &Service{
		sessions: session.NewStore(),
		parser:   parser,
		cache:    cache.New(cacheStore),
	}
}

func (s *Service) NewBuilder(ctx context.Context, _ *skyliftv1.Empty) (*skyliftv1.NewBuilderResponse, error) {
	sess := session.NewBuildSession(compiler.NewNativeBuilder())
	id := s.sessions.Create(sess)
	return &skyliftv1.NewBuilderResponse{RemoteId: id.String()}, nil
}

func (s *Service) SetTarget(ctx context.Context, req *skyliftv1.Triple) (*skyliftv1.Empty, error) {
	sess, err := s.lookup(ctx)
	if err != nil {
		return nil, err
	}

	triple := target.FromWire(req)
	err = sess.MapBuilderLocked(func(b compiler.Builder) error {
		return b.Target(triple)
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &skyliftv1.Empty{}, nil
}

func (s *Service) GetTriple(ctx context.Context, _ *skyliftv1.Empty) (*skyliftv1.Triple, error) {
	sess, err := s.lookup(ctx)
	if err != nil {
		return nil, err
	}

	var out *skyliftv1.Triple
	err = sess.MapBuilder(func(b compiler.Builder) error {
		out = target.ToWire(b.Triple())
		return nil
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return out, nil
}

func (s *Service) SetSettings(ctx context.Context, req *skyliftv1.SetRequest) (*skyliftv1.Empty, error) {
	sess, err := s.lookup(ctx)
	if err != nil {
		return nil, err
	}

	value, err := compiler.ParseSetting(req.Name, req.Value)
	if err != nil {
		return nil, toStatus(err)
	}

	err = sess.MapBuilderLocked(func(b compiler.Builder) error {
		return b.Set(req.Name, value)
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &skyliftv1.Empty{}, nil
}

func (s *Service) EnableSettings(ctx context.Context, req *skyliftv1.EnableRequest) (*skyliftv1.Empty, error) {
	sess, err := s.lookup(ctx)
	if err != nil {
		return nil, err
	}

	err = sess.MapBuilderLocked(func(b compiler.Builder) error {
		return b.Enable(req.Name)
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &skyliftv1.Empty{}, nil
}

func (s *Service) GetSettings(ctx context.Context, _ *skyliftv1.Empty) (*skyliftv1.SettingsResponse, error) {
	sess, err := s.lookup(ctx)
	if err != nil {
		return nil, err
	}

	var encoded []byte
	err = sess.MapBuilder(func(b compiler.Builder) error {
		var encErr error
		encoded, encErr = compiler.EncodeSettings(b.Settings())
		return encErr
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &skyliftv1.SettingsResponse{Settings: encoded}, nil
}

func (s *Service) Build(ctx context.Context, _ *skyliftv1.Empty) (*skyliftv1.BuildResponse, error) {
	remoteID, ok := remoteIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.FailedPrecondition, "invalid remote id")
	}
	sess, err := s.sessions.Lookup(session.RemoteID(remoteID))
	if err != nil {
		return nil, toStatus(err)
	}

	if err := sess.Build(compiler.Env{}); err != nil {
		return nil, toStatus(err)
	}
	return &skyliftv1.BuildResponse{RemoteId: remoteID}, nil
}

func (s *Service) GetFlags(ctx context.Context, _ *skyliftv1.Empty) (*skyliftv1.FlagMap, error) {
	sess, err := s.lookup(ctx)
	if err != nil {
		return nil, err
	}

	var encoded []byte
	err = sess.MapCompiler(func(c compiler.Compiler) error {
		var encErr error
		encoded, encErr = target.EncodeFlagMap(c.Flags())
		return encErr
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &skyliftv1.FlagMap{Flags: encoded}, nil
}

func (s *Service) GetIsaFlags(ctx context.Context, _ *skyliftv1.Empty) (*skyliftv1.FlagMap, error) {
	sess, err := s.lookup(ctx)
	if err != nil {
		return nil, err
	}

	var encoded []byte
	err = sess.MapCompiler(func(c compiler.Compiler) error {
		var encErr error
		encoded, encErr = target.EncodeFlagMap(c.ISAFlags())
		return encErr
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &skyliftv1.FlagMap{Flags: encoded}, nil
}

// BuildModule runs the two-level parallel compile pipeline over the
// request's wasm bytes, consulting the artifact cache first, and packages
// the result into the type-url-tagged Any the wire contract expects.
// Grounded on
// original_source/crates/skylift-server/src/server/service.rs's
// build_module/build_artifacts.
func (s *Service) BuildModule(ctx context.Context, req *skyliftv1.BuildModuleRequest) (*skyliftv1.BuildModuleResponse, error) {
	sess, err := s.lookup(ctx)
	if err != nil {
		return nil, err
	}

	var tunablesBytes, featuresBytes []byte
	if req.Tunables != nil {
		tunablesBytes = req.Tunables.Tunables
	}
	if req.Features != nil {
		featuresBytes = req.Features.Features
	}
	env, err := envFromRequest(tunablesBytes, featuresBytes, req.PagedMemoryInitialization)
	if err != nil {
		return nil, toStatus(err)
	}

	var response *skyliftv1.BuildModuleResponse
	err = sess.MapCompiler(func(c compiler.Compiler) error {
		fp := cache.Compute(cache.FingerprintInput{
			Triple:     c.Triple(),
			Flags:      c.Flags(),
			ISAFlags:   c.ISAFlags(),
			Tunables:   env.Tunables.FingerprintMap(),
			Features:   env.Features,
			VersionTag: version.Tag,
			Wasm:       req.Wasm,
		})

		data, err := s.cache.GetOrCompute(fp, func() ([]byte, error) {
			return s.compile(ctx, c, req.Wasm, env)
		})
		if err != nil {
			return err
		}

		response = &skyliftv1.BuildModuleResponse{
			SerializedModule: &anypb.Any{
				TypeUrl: skyliftv1.SerializedModuleTypeURL,
				Value:   data,
			},
		}
		return nil
	})
	if err != nil {
		return nil, toStatus(errors.Wrap(err, "compilation failed"))
	}
	return response, nil
}

// compile drives the compile pipeline and packs its result into the bytes
// the cache stores and the wire response carries.
func (s *Service) compile(ctx context.Context, c compiler.Compiler, wasm []byte, env compiler.Env) ([]byte, error) {
	artifacts, err := pipeline.Run(ctx, s.parser, c, wasm, pipeline.Options{
		Env:             env,
		EmitNativeDWARF: env.Tunables.GenerateNativeDebugInfo,
	})
	if err != nil {
		return nil, invalidArgument(err.Error())
	}

	return pipeline.Pack(pipeline.Envelope{
		Triple:     c.Triple(),
		Flags:      c.Flags(),
		ISAFlags:   c.ISAFlags(),
		Tunables:   env.Tunables,
		Features:   env.Features,
		VersionTag: version.Tag,
		Artifacts:  artifacts,
	})
}

// lookup resolves the current request's remote-id metadata to a Session,
// returning a ready-to-send gRPC status error if either step fails.
func (s *Service) lookup(ctx context.Context) (*session.Session, error) {
	remoteID, ok := remoteIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.FailedPrecondition, "invalid remote id")
	}
	sess, err := s.sessions.Lookup(session.RemoteID(remoteID))
	if err != nil {
		return nil, toStatus(err)
	}
	return sess, nil
}
