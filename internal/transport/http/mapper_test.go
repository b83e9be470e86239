package http

import (
	"encoding/json"
	"testing"

	"github.com/vovakirdan/relay-server/internal/core"
	"github.com/vovakirdan/relay-server/internal/proto"
)

func inbound(t *testing.T, eventType string, data any) proto.Inbound {
	t.Helper()

	payload, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return proto.Inbound{Type: eventType, Data: payload}
}

func TestMapperValidCommands(t *testing.T) {
	cases := []struct {
		name string
		in   proto.Inbound
		want core.Command
	}{
		{
			name: "register",
			in:   inbound(t, proto.TypeRegister, proto.RegisterData{UID: "u1", Nickname: "Alice"}),
			want: core.Command{Kind: core.CommandRegister, UID: "u1", Nickname: "Alice"},
		},
		{
			name: "unregister",
			in:   inbound(t, proto.TypeUnregister, proto.UIDData{UID: "u1"}),
			want: core.Command{Kind: core.CommandUnregister, UID: "u1"},
		},
		{
			name: "new_room",
			in:   inbound(t, proto.TypeNewRoom, proto.NewRoomData{UID: "u1", Password: "pw"}),
			want: core.Command{Kind: core.CommandNewRoom, UID: "u1", Password: "pw"},
		},
		{
			name: "join_room",
			in:   inbound(t, proto.TypeJoinRoom, proto.JoinData{UID: "u1", Room: "AbC12", Password: "pw"}),
			want: core.Command{Kind: core.CommandJoinRoom, UID: "u1", Room: "AbC12", Password: "pw"},
		},
		{
			name: "leave_room",
			in:   inbound(t, proto.TypeLeaveRoom, proto.UIDData{UID: "u1"}),
			want: core.Command{Kind: core.CommandLeaveRoom, UID: "u1"},
		},
		{
			name: "message",
			in:   inbound(t, proto.TypeMessage, proto.MessageData{UID: "u1", Message: "hi"}),
			want: core.Command{Kind: core.CommandMessage, UID: "u1", Text: "hi"},
		},
		{
			name: "nickname",
			in:   inbound(t, proto.TypeNickname, proto.NicknameData{UID: "u1", Nickname: "Bob"}),
			want: core.Command{Kind: core.CommandNickname, UID: "u1", Nickname: "Bob"},
		},
		{
			name: "status",
			in:   inbound(t, proto.TypeStatus, proto.UIDData{UID: "u1"}),
			want: core.Command{Kind: core.CommandStatus, UID: "u1"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, rejectEnv := inboundToCommand(tc.in)
			if rejectEnv != nil {
				t.Fatalf("unexpected reject: %+v", rejectEnv)
			}
			if *cmd != tc.want {
				t.Fatalf("got %+v, want %+v", *cmd, tc.want)
			}
		})
	}
}

func TestMapperRejectsMissingFields(t *testing.T) {
	cases := []struct {
		name string
		in   proto.Inbound
	}{
		{"register without uid", inbound(t, proto.TypeRegister, proto.RegisterData{Nickname: "Alice"})},
		{"unregister without uid", inbound(t, proto.TypeUnregister, proto.UIDData{})},
		{"new_room without password", inbound(t, proto.TypeNewRoom, proto.NewRoomData{UID: "u1"})},
		{"join_room without room", inbound(t, proto.TypeJoinRoom, proto.JoinData{UID: "u1", Password: "pw"})},
		{"join_room without password", inbound(t, proto.TypeJoinRoom, proto.JoinData{UID: "u1", Room: "AbC12"})},
		{"message without text", inbound(t, proto.TypeMessage, proto.MessageData{UID: "u1"})},
		{"nickname without name", inbound(t, proto.TypeNickname, proto.NicknameData{UID: "u1"})},
		{"status without uid", inbound(t, proto.TypeStatus, proto.UIDData{})},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, rejectEnv := inboundToCommand(tc.in)
			if cmd != nil {
				t.Fatalf("expected reject, got command %+v", cmd)
			}
			if rejectEnv == nil || rejectEnv.Status != proto.StatusFailed {
				t.Fatalf("expected failed envelope, got %+v", rejectEnv)
			}
			if rejectEnv.Type != tc.in.Type {
				t.Fatalf("reject type %q does not echo request %q", rejectEnv.Type, tc.in.Type)
			}
		})
	}
}

func TestMapperRejectsUnknownType(t *testing.T) {
	cmd, rejectEnv := inboundToCommand(proto.Inbound{Type: "teleport", Data: []byte(`{}`)})
	if cmd != nil || rejectEnv == nil || rejectEnv.Status != proto.StatusFailed {
		t.Fatalf("unknown type not rejected: cmd=%+v reject=%+v", cmd, rejectEnv)
	}
}

func TestOutboundFromEvent(t *testing.T) {
	out := outboundFromEvent(&core.Event{Kind: core.EventRoomCreated, Room: "AbC12"})
	if out.Type != proto.TypeNewRoom || out.Status != proto.StatusSuccess || out.Room != "AbC12" {
		t.Fatalf("unexpected new_room envelope: %+v", out)
	}

	out = outboundFromEvent(&core.Event{Kind: core.EventStatus, Nickname: "Alice"})
	if out.Detail == nil || out.Detail.Joined != "None" || out.Detail.Nickname != "Alice" {
		t.Fatalf("unjoined status should read None: %+v", out)
	}

	out = outboundFromEvent(&core.Event{Kind: core.EventStatus, Nickname: "Alice", Room: "AbC12"})
	if out.Detail == nil || out.Detail.Joined != "AbC12" {
		t.Fatalf("joined status should carry the code: %+v", out)
	}

	out = outboundFromEvent(&core.Event{Kind: core.EventMessageReceived, Text: "hi", From: "Bob"})
	if out.Type != proto.TypeMessage || out.Received != "hi" || out.From != "Bob" {
		t.Fatalf("unexpected delivery envelope: %+v", out)
	}

	out = outboundFromEvent(&core.Event{
		Kind: core.EventError,
		Op:   core.CommandJoinRoom,
		Err:  &core.CoreError{Code: core.ErrCodeWrongPassword, Message: "incorrect password for room AbC12"},
	})
	if out.Type != proto.TypeJoinRoom || out.Status != proto.StatusFailed || out.Message == "" {
		t.Fatalf("unexpected error envelope: %+v", out)
	}
}
