package main

import (
	"flag"
	"fmt"
	"log"

	"kyc-chain.backend/pkg/crypto"
)

// Generates a service API key and the bcrypt hash the server expects in
// SERVICE_API_KEY_HASH. The plaintext key goes to the calling service and
// is never stored.
func main() {
	prefix := flag.String("prefix", "kyc", "key prefix")
	flag.Parse()

	raw, err := crypto.GenerateAPIKey()
	if err != nil {
		log.Fatalf("failed to generate api key: %v", err)
	}

	apiKey := fmt.Sprintf("%s_%s", *prefix, raw)

	hash, err := crypto.HashAPIKey(apiKey)
	if err != nil {
		log.Fatalf("failed to hash api key: %v", err)
	}

	fmt.Println("Generated service API credentials")
	fmt.Printf("API_KEY=%s\n", apiKey)
	fmt.Printf("SERVICE_API_KEY_HASH=%s\n", hash)
}
