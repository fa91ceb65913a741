package stomp

import "testing"

// TestLiveBrokerConnectDisconnect exercises the handshake against a real
// broker when one is listening locally
func TestLiveBrokerConnectDisconnect(t *testing.T) {
	cf := requireBroker(t)

	conn, err := cf.Connect()
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}

	if err := conn.Disconnect(); err != nil {
		t.Fatalf("Disconnect failed: %v", err)
	}
	if err := conn.Disconnect(); err != nil {
		t.Fatalf("second Disconnect failed: %v", err)
	}
}
