package http

import (
	"encoding/json"
	"fmt"

	"github.com/vovakirdan/relay-server/internal/core"
	"github.com/vovakirdan/relay-server/internal/proto"
)

// inboundToCommand validates required fields and maps the inbound envelope
// to a core command. A nil command with a non-nil reject means the request
// fails before any registry lookup; the reject envelope goes straight back
// to the issuing connection.
func inboundToCommand(in proto.Inbound) (*core.Command, *proto.Outbound) {
	switch in.Type {
	case proto.TypeRegister:
		var data proto.RegisterData
		if err := json.Unmarshal(in.Data, &data); err != nil {
			return nil, reject(in.Type, "malformed payload")
		}
		if data.UID == "" {
			return nil, reject(in.Type, "uid is required")
		}
		return &core.Command{Kind: core.CommandRegister, UID: data.UID, Nickname: data.Nickname}, nil

	case proto.TypeUnregister, proto.TypeLeaveRoom, proto.TypeStatus:
		var data proto.UIDData
		if err := json.Unmarshal(in.Data, &data); err != nil {
			return nil, reject(in.Type, "malformed payload")
		}
		if data.UID == "" {
			return nil, reject(in.Type, "uid is required")
		}
		kind := core.CommandUnregister
		switch in.Type {
		case proto.TypeLeaveRoom:
			kind = core.CommandLeaveRoom
		case proto.TypeStatus:
			kind = core.CommandStatus
		}
		return &core.Command{Kind: kind, UID: data.UID}, nil

	case proto.TypeNewRoom:
		var data proto.NewRoomData
		if err := json.Unmarshal(in.Data, &data); err != nil {
			return nil, reject(in.Type, "malformed payload")
		}
		if data.UID == "" {
			return nil, reject(in.Type, "uid is required")
		}
		if data.Password == "" {
			return nil, reject(in.Type, "password is required to create a room")
		}
		return &core.Command{Kind: core.CommandNewRoom, UID: data.UID, Password: data.Password}, nil

	case proto.TypeJoinRoom:
		var data proto.JoinData
		if err := json.Unmarshal(in.Data, &data); err != nil {
			return nil, reject(in.Type, "malformed payload")
		}
		if data.UID == "" {
			return nil, reject(in.Type, "uid is required")
		}
		if data.Room == "" {
			return nil, reject(in.Type, "room code is required")
		}
		if data.Password == "" {
			return nil, reject(in.Type, "password is required to join a room")
		}
		return &core.Command{Kind: core.CommandJoinRoom, UID: data.UID, Room: data.Room, Password: data.Password}, nil

	case proto.TypeMessage:
		var data proto.MessageData
		if err := json.Unmarshal(in.Data, &data); err != nil {
			return nil, reject(in.Type, "malformed payload")
		}
		if data.UID == "" {
			return nil, reject(in.Type, "uid is required")
		}
		if data.Message == "" {
			return nil, reject(in.Type, "no message to send")
		}
		return &core.Command{Kind: core.CommandMessage, UID: data.UID, Text: data.Message}, nil

	case proto.TypeNickname:
		var data proto.NicknameData
		if err := json.Unmarshal(in.Data, &data); err != nil {
			return nil, reject(in.Type, "malformed payload")
		}
		if data.UID == "" {
			return nil, reject(in.Type, "uid is required")
		}
		if data.Nickname == "" {
			return nil, reject(in.Type, "no nickname given")
		}
		return &core.Command{Kind: core.CommandNickname, UID: data.UID, Nickname: data.Nickname}, nil

	default:
		return nil, reject(in.Type, fmt.Sprintf("unknown event type %q", in.Type))
	}
}

func reject(eventType, msg string) *proto.Outbound {
	return &proto.Outbound{
		Type:    eventType,
		Status:  proto.StatusFailed,
		Message: msg,
	}
}

// outboundFromEvent maps a core event to its wire envelope.
func outboundFromEvent(ev *core.Event) proto.Outbound {
	switch ev.Kind {
	case core.EventRegistered:
		return proto.Outbound{Type: proto.TypeRegister, Status: proto.StatusSuccess}
	case core.EventUnregistered:
		return proto.Outbound{Type: proto.TypeUnregister, Status: proto.StatusSuccess}
	case core.EventRoomCreated:
		return proto.Outbound{Type: proto.TypeNewRoom, Status: proto.StatusSuccess, Room: ev.Room}
	case core.EventRoomJoined:
		return proto.Outbound{Type: proto.TypeJoinRoom, Status: proto.StatusSuccess, Room: ev.Room}
	case core.EventRoomLeft:
		return proto.Outbound{Type: proto.TypeLeaveRoom, Status: proto.StatusSuccess, Room: ev.Room}
	case core.EventMessageSent:
		return proto.Outbound{Type: proto.TypeMessage, Status: proto.StatusSuccess}
	case core.EventNicknameSet:
		return proto.Outbound{Type: proto.TypeNickname, Status: proto.StatusSuccess}
	case core.EventStatus:
		joined := ev.Room
		if joined == "" {
			joined = "None"
		}
		return proto.Outbound{
			Type:   proto.TypeStatus,
			Status: proto.StatusSuccess,
			Detail: &proto.StatusDetail{Nickname: ev.Nickname, Joined: joined},
		}
	case core.EventMessageReceived:
		return proto.Outbound{
			Type:     proto.TypeMessage,
			Status:   proto.StatusSuccess,
			Received: ev.Text,
			From:     ev.From,
		}
	case core.EventError:
		return proto.Outbound{
			Type:    ev.Op.String(),
			Status:  proto.StatusFailed,
			Message: ev.Err.Message,
		}
	default:
		return proto.Outbound{Type: "unknown", Status: proto.StatusFailed, Message: "unhandled event"}
	}
}
