package ghsync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asana/ghsync/log/mocks"
)

func validOptions() Options {
	return Options{
		LocalPath: "./build",
		RepoPath:  "site/assets",
		Message:   "Publish assets",
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*Options)
		expectedField string
	}{
		{name: "valid options", mutate: func(o *Options) {}},
		{
			name:          "missing local path",
			mutate:        func(o *Options) { o.LocalPath = "" },
			expectedField: "LocalPath",
		},
		{
			name:          "missing repo path",
			mutate:        func(o *Options) { o.RepoPath = "" },
			expectedField: "RepoPath",
		},
		{
			name:          "missing message",
			mutate:        func(o *Options) { o.Message = "" },
			expectedField: "Message",
		},
		{
			name:          "create branch from itself",
			mutate:        func(o *Options) { o.CreateBranch = true },
			expectedField: "CreateBranch",
		},
		{
			name:          "pull request into itself",
			mutate:        func(o *Options) { o.CreatePullRequest = true },
			expectedField: "CreatePullRequest",
		},
		{
			name: "explicit identical branches with pull request",
			mutate: func(o *Options) {
				o.Branch = "main"
				o.BaseBranch = "main"
				o.CreatePullRequest = true
			},
			expectedField: "CreatePullRequest",
		},
		{
			name: "different branches allow pull request",
			mutate: func(o *Options) {
				o.Branch = "publish"
				o.CreateBranch = true
				o.CreatePullRequest = true
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := validOptions()
			tt.mutate(&opts)

			syncer, err := New(newStubGateway(), opts)
			if tt.expectedField == "" {
				require.NoError(t, err)
				require.NotNil(t, syncer)
				return
			}

			require.Error(t, err)
			require.Nil(t, syncer)
			require.ErrorIs(t, err, ErrInvalidOptions)

			var optsErr *InvalidOptionsError
			require.ErrorAs(t, err, &optsErr)
			assert.Equal(t, tt.expectedField, optsErr.Field)
		})
	}

	t.Run("defaults applied", func(t *testing.T) {
		syncer, err := New(newStubGateway(), validOptions())
		require.NoError(t, err)
		assert.Equal(t, DefaultBranch, syncer.opts.Branch)
		assert.Equal(t, DefaultBranch, syncer.opts.BaseBranch)
	})

	t.Run("nil gateway", func(t *testing.T) {
		_, err := New(nil, validOptions())
		require.Error(t, err)
		require.Equal(t, "gateway cannot be nil", err.Error())
	})

	t.Run("validation happens before any gateway call", func(t *testing.T) {
		gw := newStubGateway()

		_, err := New(gw, Options{})
		require.ErrorIs(t, err, ErrInvalidOptions)
		assert.Zero(t, gw.getRefCalls)
	})
}

func TestWithLogger(t *testing.T) {
	t.Run("sets custom logger", func(t *testing.T) {
		logger := &mocks.FakeLogger{}
		syncer, err := New(newStubGateway(), validOptions(), WithLogger(logger))
		require.NoError(t, err)
		require.Equal(t, logger, syncer.logger, "logger should be set to the provided logger")
	})

	t.Run("returns error if logger is nil", func(t *testing.T) {
		syncer, err := New(newStubGateway(), validOptions(), WithLogger(nil))
		require.Error(t, err)
		require.Nil(t, syncer)
		require.Equal(t, "logger cannot be nil", err.Error())
	})
}
