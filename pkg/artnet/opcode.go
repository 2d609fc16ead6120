package artnet

import "fmt"

// OpCode identifies an ArtNet packet type. It travels little-endian at bytes 8-9.
type OpCode uint16

// Known opcodes. Only OpOutput carries flame data; the rest are named so they
// can be logged.
const (
	OpPoll             OpCode = 0x2000
	OpPollReply        OpCode = 0x2100
	OpDiagData         OpCode = 0x2300
	OpCommand          OpCode = 0x2400
	OpOutput           OpCode = 0x5000 // ArtDMX
	OpNzs              OpCode = 0x5100
	OpSync             OpCode = 0x5200
	OpAddress          OpCode = 0x6000
	OpInput            OpCode = 0x7000
	OpTodRequest       OpCode = 0x8000
	OpTodData          OpCode = 0x8100
	OpTodControl       OpCode = 0x8200
	OpRdm              OpCode = 0x8300
	OpRdmSub           OpCode = 0x8400
	OpMedia            OpCode = 0x9000
	OpMediaPatch       OpCode = 0x9100
	OpMediaControl     OpCode = 0x9200
	OpMediaContrlReply OpCode = 0x9300
	OpTimeCode         OpCode = 0x9700
	OpTimeSync         OpCode = 0x9800
	OpTrigger          OpCode = 0x9900
	OpDirectory        OpCode = 0x9a00
	OpDirectoryReply   OpCode = 0x9b00
	OpVideoSetup       OpCode = 0xa010
	OpVideoPalette     OpCode = 0xa020
	OpVideoData        OpCode = 0xa040
	OpMacMaster        OpCode = 0xf000
	OpMacSlave         OpCode = 0xf100
	OpFirmwareMaster   OpCode = 0xf200
	OpFirmwareReply    OpCode = 0xf300
	OpFileTnMaster     OpCode = 0xf400
	OpFileFnMaster     OpCode = 0xf500
	OpFileFnReply      OpCode = 0xf600
	OpIPProg           OpCode = 0xf800
	OpIPProgReply      OpCode = 0xf900
)

var opNames = map[OpCode]string{
	OpPoll:             "Poll",
	OpPollReply:        "PollReply",
	OpDiagData:         "DiagData",
	OpCommand:          "Command",
	OpOutput:           "Output",
	OpNzs:              "Nzs",
	OpSync:             "Sync",
	OpAddress:          "Address",
	OpInput:            "Input",
	OpTodRequest:       "TodRequest",
	OpTodData:          "TodData",
	OpTodControl:       "TodControl",
	OpRdm:              "Rdm",
	OpRdmSub:           "RdmSub",
	OpMedia:            "Media",
	OpMediaPatch:       "MediaPatch",
	OpMediaControl:     "MediaControl",
	OpMediaContrlReply: "MediaContrlReply",
	OpTimeCode:         "TimeCode",
	OpTimeSync:         "TimeSync",
	OpTrigger:          "Trigger",
	OpDirectory:        "Directory",
	OpDirectoryReply:   "DirectoryReply",
	OpVideoSetup:       "VideoSetup",
	OpVideoPalette:     "VideoPalette",
	OpVideoData:        "VideoData",
	OpMacMaster:        "MacMaster",
	OpMacSlave:         "MacSlave",
	OpFirmwareMaster:   "FirmwareMaster",
	OpFirmwareReply:    "FirmwareReply",
	OpFileTnMaster:     "FileTnMaster",
	OpFileFnMaster:     "FileFnMaster",
	OpFileFnReply:      "FileFnReply",
	OpIPProg:           "IpProg",
	OpIPProgReply:      "IpProgReply",
}

// Known reports whether op is a defined ArtNet opcode.
func (op OpCode) Known() bool {
	_, ok := opNames[op]
	return ok
}

func (op OpCode) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}
	return fmt.Sprintf("OpCode(0x%04x)", uint16(op))
}
