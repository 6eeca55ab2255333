package api_test

import (
	"testing"
)

func TestPlanCatalog(t *testing.T) {
	requireServer(t)

	resp := makeRequest("GET", "/memberships/plans", nil, "")
	if !resp.IsSuccess() {
		t.Fatalf("plans failed: %s", resp.Message)
	}
}

func TestPurchaseAndStatus(t *testing.T) {
	requireServer(t)

	token, _ := registerMember(t)

	purchase := makeRequest("POST", "/memberships/purchase", map[string]string{
		"plan": "monthly",
	}, token)
	if !purchase.IsSuccess() {
		t.Fatalf("purchase failed: %s", purchase.Message)
	}

	status := makeRequest("GET", "/memberships/status", nil, token)
	if !status.IsSuccess() {
		t.Fatalf("status failed: %s", status.Message)
	}
	if active, ok := status.Object()["active"].(bool); !ok || !active {
		t.Error("membership not active after purchase")
	}
}

func TestStatus_NoMembership(t *testing.T) {
	requireServer(t)

	token, _ := registerMember(t)

	status := makeRequest("GET", "/memberships/status", nil, token)
	if !status.IsSuccess() {
		t.Fatalf("status failed: %s", status.Message)
	}
	if active, _ := status.Object()["active"].(bool); active {
		t.Error("fresh account reports an active membership")
	}
}

func TestPurchase_InvalidPlan(t *testing.T) {
	requireServer(t)

	token, _ := registerMember(t)

	resp := makeRequest("POST", "/memberships/purchase", map[string]string{
		"plan": "lifetime",
	}, token)
	if resp.IsSuccess() {
		t.Fatal("purchase of unknown plan succeeded")
	}
}
