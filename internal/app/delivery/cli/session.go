package cli

import (
	"context"
	"fmt"
	"healthrecord-service/internal/app/config"
	"healthrecord-service/internal/app/contracts"
	"healthrecord-service/internal/app/drivers/logger"
	"healthrecord-service/internal/app/services/shared/recordstore"
	"healthrecord-service/internal/app/services/syncclient"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// writerNotifier prints notices as "title: message" lines.
type writerNotifier struct {
	out io.Writer
}

func (n *writerNotifier) Notify(title, message string) {
	fmt.Fprintf(n.out, "%s: %s\n", title, message)
}

// session is a sync client bound to one command invocation.
type session struct {
	*syncclient.Client
	log logrus.FieldLogger
}

// newSession builds a sync client talking to the configured record store.
// Records and notices go to stdout, diagnostics to stderr.
func newSession(cmd *cobra.Command, opts *RootOptions, clientConfig *config.ClientConfig, picker contracts.ImagePicker) *session {
	log := logger.NewLogrusLogger(clientConfig, cmd.ErrOrStderr())
	if opts.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	store := recordstore.NewRecordStoreClient(opts.APIURL, opts.Timeout, log)
	notifier := &writerNotifier{out: cmd.OutOrStdout()}
	return &session{
		Client: syncclient.NewClient(store, picker, notifier, log),
		log:    log,
	}
}

// loadBeforeWrite fills the local lists ahead of an add. A failed load has
// already been reported as a notice and does not stop the write.
func (s *session) loadBeforeWrite(ctx context.Context) {
	err := s.Load(ctx)
	if err != nil {
		s.log.WithError(err).Debug("loading records before write failed")
	}
}
