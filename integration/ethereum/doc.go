// Package ethereum resolves networks from a buildconfig.BuildConfig for use
// with go-ethereum.
//
// Loading a configuration never checks credentials. Resolve is the point of
// first use: it fails when the selected network lacks an RPC URL or a signing
// key, and decodes every configured key into a secp256k1 private key.
//
//	cfg, err := buildconfig.Load(buildconfig.Environ())
//	if err != nil {
//		return err
//	}
//
//	sepolia, err := ethereum.Resolve(cfg, "sepolia")
//	if errors.Is(err, ethereum.ErrMissingCredential) {
//		// *ethereum.MissingCredentialError names the unset variable
//		return err
//	}
//
//	client, err := sepolia.Dial(ctx)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
// Errors never contain key material or the RPC URL.
package ethereum
