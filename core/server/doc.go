// Package server runs an http.Handler with graceful shutdown.
//
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, handler))
//	return g.Wait()
//
// Config is filled from SERVER_* environment variables; TLS is enabled when
// both SERVER_TLS_CERT_FILE and SERVER_TLS_KEY_FILE are set.
package server
