package perfil

import (
	"testing"
	"time"

	"github.com/registrodaime/api/internal/util"
)

func TestMontarUpsertPrimeiraGravacao(t *testing.T) {
	agora := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	doc := MontarUpsert("u1", util.Doc{"displayName": "Maria"}, nil, agora)

	if doc["uid"] != "u1" {
		t.Fatalf("uid = %v", doc["uid"])
	}
	if doc["createdAt"] != "2024-05-01T10:00:00Z" {
		t.Fatalf("createdAt = %v", doc["createdAt"])
	}
	if doc["updatedAt"] != "2024-05-01T10:00:00Z" {
		t.Fatalf("updatedAt = %v", doc["updatedAt"])
	}
}

func TestMontarUpsertPreservaCreatedAt(t *testing.T) {
	existente := util.Doc{
		"uid":         "u1",
		"displayName": "Maria",
		"createdAt":   "2020-01-01T00:00:00Z",
		"updatedAt":   "2020-01-01T00:00:00Z",
	}
	agora := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	// o chamador tenta contrabandear createdAt próprio
	patch := util.Doc{"displayName": "Maria Silva", "createdAt": "1999-01-01T00:00:00Z"}
	doc := MontarUpsert("u1", patch, existente, agora)

	if doc["createdAt"] != "2020-01-01T00:00:00Z" {
		t.Fatalf("createdAt = %v, want valor original preservado", doc["createdAt"])
	}
	if doc["updatedAt"] != "2024-05-01T10:00:00Z" {
		t.Fatalf("updatedAt = %v", doc["updatedAt"])
	}
	if doc["displayName"] != "Maria Silva" {
		t.Fatalf("displayName = %v", doc["displayName"])
	}
}

func TestMontarUpsertMergePorCampo(t *testing.T) {
	existente := util.Doc{
		"uid":       "u1",
		"cidade":    "Rio Branco",
		"estado":    "AC",
		"createdAt": "2020-01-01T00:00:00Z",
	}
	agora := time.Now()

	// cidade ausente no patch fica intacta; estado com nil é removido
	doc := MontarUpsert("u1", util.Doc{"estado": nil, "pais": "Brasil"}, existente, agora)

	if doc["cidade"] != "Rio Branco" {
		t.Fatalf("cidade = %v, want intacta", doc["cidade"])
	}
	if _, ok := doc["estado"]; ok {
		t.Fatal("estado deveria ter sido removido")
	}
	if doc["pais"] != "Brasil" {
		t.Fatalf("pais = %v", doc["pais"])
	}
}

func TestMontarUpsertForcaUID(t *testing.T) {
	doc := MontarUpsert("u1", util.Doc{"uid": "outro"}, nil, time.Now())
	if doc["uid"] != "u1" {
		t.Fatalf("uid = %v, want u1", doc["uid"])
	}
}
