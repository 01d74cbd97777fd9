// Package modem implements the Bell-202 AFSK direct-digital-synthesis
// modulator: a 512-entry Q15 sine table (this file), a phase-accumulator
// tone generator, and the bit-clock/NRZI state machine that turns a
// bitstream.Buffer into audio samples.
package modem

// tableSize is the sine lookup table length; it must stay a power of two
// so (phase>>16)&(tableSize-1) indexes it without a bounds check.
const tableSize = 512

// sineTable holds one full sine cycle quantized to Q15 (±32767) and
// duplicated into both halves of each 32-bit word, so a single table
// lookup yields one stereo-interleaved I2S sample pair. Values were
// generated once from sample[i] = round(sin(2*pi*i/512) * 32767) and
// committed as source (mirroring the firmware's build.rs-time table
// generation) rather than computed with go:generate.
var sineTable = [tableSize]uint32{
	0x00000000, // 0
	0x01920192, // 402
	0x03240324, // 804
	0x04B604B6, // 1206
	0x06480648, // 1608
	0x07D907D9, // 2009
	0x096A096A, // 2410
	0x0AFB0AFB, // 2811
	0x0C8C0C8C, // 3212
	0x0E1C0E1C, // 3612
	0x0FAB0FAB, // 4011
	0x113A113A, // 4410
	0x12C812C8, // 4808
	0x14551455, // 5205
	0x15E215E2, // 5602
	0x176E176E, // 5998
	0x18F918F9, // 6393
	0x1A821A82, // 6786
	0x1C0B1C0B, // 7179
	0x1D931D93, // 7571
	0x1F1A1F1A, // 7962
	0x209F209F, // 8351
	0x22232223, // 8739
	0x23A623A6, // 9126
	0x25282528, // 9512
	0x26A826A8, // 9896
	0x28262826, // 10278
	0x29A329A3, // 10659
	0x2B1F2B1F, // 11039
	0x2C992C99, // 11417
	0x2E112E11, // 11793
	0x2F872F87, // 12167
	0x30FB30FB, // 12539
	0x326E326E, // 12910
	0x33DF33DF, // 13279
	0x354D354D, // 13645
	0x36BA36BA, // 14010
	0x38243824, // 14372
	0x398C398C, // 14732
	0x3AF23AF2, // 15090
	0x3C563C56, // 15446
	0x3DB83DB8, // 15800
	0x3F173F17, // 16151
	0x40734073, // 16499
	0x41CE41CE, // 16846
	0x43254325, // 17189
	0x447A447A, // 17530
	0x45CD45CD, // 17869
	0x471C471C, // 18204
	0x48694869, // 18537
	0x49B449B4, // 18868
	0x4AFB4AFB, // 19195
	0x4C3F4C3F, // 19519
	0x4D814D81, // 19841
	0x4EBF4EBF, // 20159
	0x4FFB4FFB, // 20475
	0x51335133, // 20787
	0x52685268, // 21096
	0x539B539B, // 21403
	0x54C954C9, // 21705
	0x55F555F5, // 22005
	0x571D571D, // 22301
	0x58425842, // 22594
	0x59645964, // 22884
	0x5A825A82, // 23170
	0x5B9C5B9C, // 23452
	0x5CB35CB3, // 23731
	0x5DC75DC7, // 24007
	0x5ED75ED7, // 24279
	0x5FE35FE3, // 24547
	0x60EB60EB, // 24811
	0x61F061F0, // 25072
	0x62F162F1, // 25329
	0x63EE63EE, // 25582
	0x64E864E8, // 25832
	0x65DD65DD, // 26077
	0x66CF66CF, // 26319
	0x67BC67BC, // 26556
	0x68A668A6, // 26790
	0x698B698B, // 27019
	0x6A6D6A6D, // 27245
	0x6B4A6B4A, // 27466
	0x6C236C23, // 27683
	0x6CF86CF8, // 27896
	0x6DC96DC9, // 28105
	0x6E966E96, // 28310
	0x6F5E6F5E, // 28510
	0x70227022, // 28706
	0x70E270E2, // 28898
	0x719D719D, // 29085
	0x72547254, // 29268
	0x73077307, // 29447
	0x73B573B5, // 29621
	0x745F745F, // 29791
	0x75047504, // 29956
	0x75A575A5, // 30117
	0x76417641, // 30273
	0x76D876D8, // 30424
	0x776B776B, // 30571
	0x77FA77FA, // 30714
	0x78847884, // 30852
	0x79097909, // 30985
	0x79897989, // 31113
	0x7A057A05, // 31237
	0x7A7C7A7C, // 31356
	0x7AEE7AEE, // 31470
	0x7B5C7B5C, // 31580
	0x7BC57BC5, // 31685
	0x7C297C29, // 31785
	0x7C887C88, // 31880
	0x7CE37CE3, // 31971
	0x7D397D39, // 32057
	0x7D897D89, // 32137
	0x7DD57DD5, // 32213
	0x7E1D7E1D, // 32285
	0x7E5F7E5F, // 32351
	0x7E9C7E9C, // 32412
	0x7ED57ED5, // 32469
	0x7F097F09, // 32521
	0x7F377F37, // 32567
	0x7F617F61, // 32609
	0x7F867F86, // 32646
	0x7FA67FA6, // 32678
	0x7FC17FC1, // 32705
	0x7FD87FD8, // 32728
	0x7FE97FE9, // 32745
	0x7FF57FF5, // 32757
	0x7FFD7FFD, // 32765
	0x7FFF7FFF, // 32767
	0x7FFD7FFD, // 32765
	0x7FF57FF5, // 32757
	0x7FE97FE9, // 32745
	0x7FD87FD8, // 32728
	0x7FC17FC1, // 32705
	0x7FA67FA6, // 32678
	0x7F867F86, // 32646
	0x7F617F61, // 32609
	0x7F377F37, // 32567
	0x7F097F09, // 32521
	0x7ED57ED5, // 32469
	0x7E9C7E9C, // 32412
	0x7E5F7E5F, // 32351
	0x7E1D7E1D, // 32285
	0x7DD57DD5, // 32213
	0x7D897D89, // 32137
	0x7D397D39, // 32057
	0x7CE37CE3, // 31971
	0x7C887C88, // 31880
	0x7C297C29, // 31785
	0x7BC57BC5, // 31685
	0x7B5C7B5C, // 31580
	0x7AEE7AEE, // 31470
	0x7A7C7A7C, // 31356
	0x7A057A05, // 31237
	0x79897989, // 31113
	0x79097909, // 30985
	0x78847884, // 30852
	0x77FA77FA, // 30714
	0x776B776B, // 30571
	0x76D876D8, // 30424
	0x76417641, // 30273
	0x75A575A5, // 30117
	0x75047504, // 29956
	0x745F745F, // 29791
	0x73B573B5, // 29621
	0x73077307, // 29447
	0x72547254, // 29268
	0x719D719D, // 29085
	0x70E270E2, // 28898
	0x70227022, // 28706
	0x6F5E6F5E, // 28510
	0x6E966E96, // 28310
	0x6DC96DC9, // 28105
	0x6CF86CF8, // 27896
	0x6C236C23, // 27683
	0x6B4A6B4A, // 27466
	0x6A6D6A6D, // 27245
	0x698B698B, // 27019
	0x68A668A6, // 26790
	0x67BC67BC, // 26556
	0x66CF66CF, // 26319
	0x65DD65DD, // 26077
	0x64E864E8, // 25832
	0x63EE63EE, // 25582
	0x62F162F1, // 25329
	0x61F061F0, // 25072
	0x60EB60EB, // 24811
	0x5FE35FE3, // 24547
	0x5ED75ED7, // 24279
	0x5DC75DC7, // 24007
	0x5CB35CB3, // 23731
	0x5B9C5B9C, // 23452
	0x5A825A82, // 23170
	0x59645964, // 22884
	0x58425842, // 22594
	0x571D571D, // 22301
	0x55F555F5, // 22005
	0x54C954C9, // 21705
	0x539B539B, // 21403
	0x52685268, // 21096
	0x51335133, // 20787
	0x4FFB4FFB, // 20475
	0x4EBF4EBF, // 20159
	0x4D814D81, // 19841
	0x4C3F4C3F, // 19519
	0x4AFB4AFB, // 19195
	0x49B449B4, // 18868
	0x48694869, // 18537
	0x471C471C, // 18204
	0x45CD45CD, // 17869
	0x447A447A, // 17530
	0x43254325, // 17189
	0x41CE41CE, // 16846
	0x40734073, // 16499
	0x3F173F17, // 16151
	0x3DB83DB8, // 15800
	0x3C563C56, // 15446
	0x3AF23AF2, // 15090
	0x398C398C, // 14732
	0x38243824, // 14372
	0x36BA36BA, // 14010
	0x354D354D, // 13645
	0x33DF33DF, // 13279
	0x326E326E, // 12910
	0x30FB30FB, // 12539
	0x2F872F87, // 12167
	0x2E112E11, // 11793
	0x2C992C99, // 11417
	0x2B1F2B1F, // 11039
	0x29A329A3, // 10659
	0x28262826, // 10278
	0x26A826A8, // 9896
	0x25282528, // 9512
	0x23A623A6, // 9126
	0x22232223, // 8739
	0x209F209F, // 8351
	0x1F1A1F1A, // 7962
	0x1D931D93, // 7571
	0x1C0B1C0B, // 7179
	0x1A821A82, // 6786
	0x18F918F9, // 6393
	0x176E176E, // 5998
	0x15E215E2, // 5602
	0x14551455, // 5205
	0x12C812C8, // 4808
	0x113A113A, // 4410
	0x0FAB0FAB, // 4011
	0x0E1C0E1C, // 3612
	0x0C8C0C8C, // 3212
	0x0AFB0AFB, // 2811
	0x096A096A, // 2410
	0x07D907D9, // 2009
	0x06480648, // 1608
	0x04B604B6, // 1206
	0x03240324, // 804
	0x01920192, // 402
	0x00000000, // 0
	0xFE6EFE6E, // -402
	0xFCDCFCDC, // -804
	0xFB4AFB4A, // -1206
	0xF9B8F9B8, // -1608
	0xF827F827, // -2009
	0xF696F696, // -2410
	0xF505F505, // -2811
	0xF374F374, // -3212
	0xF1E4F1E4, // -3612
	0xF055F055, // -4011
	0xEEC6EEC6, // -4410
	0xED38ED38, // -4808
	0xEBABEBAB, // -5205
	0xEA1EEA1E, // -5602
	0xE892E892, // -5998
	0xE707E707, // -6393
	0xE57EE57E, // -6786
	0xE3F5E3F5, // -7179
	0xE26DE26D, // -7571
	0xE0E6E0E6, // -7962
	0xDF61DF61, // -8351
	0xDDDDDDDD, // -8739
	0xDC5ADC5A, // -9126
	0xDAD8DAD8, // -9512
	0xD958D958, // -9896
	0xD7DAD7DA, // -10278
	0xD65DD65D, // -10659
	0xD4E1D4E1, // -11039
	0xD367D367, // -11417
	0xD1EFD1EF, // -11793
	0xD079D079, // -12167
	0xCF05CF05, // -12539
	0xCD92CD92, // -12910
	0xCC21CC21, // -13279
	0xCAB3CAB3, // -13645
	0xC946C946, // -14010
	0xC7DCC7DC, // -14372
	0xC674C674, // -14732
	0xC50EC50E, // -15090
	0xC3AAC3AA, // -15446
	0xC248C248, // -15800
	0xC0E9C0E9, // -16151
	0xBF8DBF8D, // -16499
	0xBE32BE32, // -16846
	0xBCDBBCDB, // -17189
	0xBB86BB86, // -17530
	0xBA33BA33, // -17869
	0xB8E4B8E4, // -18204
	0xB797B797, // -18537
	0xB64CB64C, // -18868
	0xB505B505, // -19195
	0xB3C1B3C1, // -19519
	0xB27FB27F, // -19841
	0xB141B141, // -20159
	0xB005B005, // -20475
	0xAECDAECD, // -20787
	0xAD98AD98, // -21096
	0xAC65AC65, // -21403
	0xAB37AB37, // -21705
	0xAA0BAA0B, // -22005
	0xA8E3A8E3, // -22301
	0xA7BEA7BE, // -22594
	0xA69CA69C, // -22884
	0xA57EA57E, // -23170
	0xA464A464, // -23452
	0xA34DA34D, // -23731
	0xA239A239, // -24007
	0xA129A129, // -24279
	0xA01DA01D, // -24547
	0x9F159F15, // -24811
	0x9E109E10, // -25072
	0x9D0F9D0F, // -25329
	0x9C129C12, // -25582
	0x9B189B18, // -25832
	0x9A239A23, // -26077
	0x99319931, // -26319
	0x98449844, // -26556
	0x975A975A, // -26790
	0x96759675, // -27019
	0x95939593, // -27245
	0x94B694B6, // -27466
	0x93DD93DD, // -27683
	0x93089308, // -27896
	0x92379237, // -28105
	0x916A916A, // -28310
	0x90A290A2, // -28510
	0x8FDE8FDE, // -28706
	0x8F1E8F1E, // -28898
	0x8E638E63, // -29085
	0x8DAC8DAC, // -29268
	0x8CF98CF9, // -29447
	0x8C4B8C4B, // -29621
	0x8BA18BA1, // -29791
	0x8AFC8AFC, // -29956
	0x8A5B8A5B, // -30117
	0x89BF89BF, // -30273
	0x89288928, // -30424
	0x88958895, // -30571
	0x88068806, // -30714
	0x877C877C, // -30852
	0x86F786F7, // -30985
	0x86778677, // -31113
	0x85FB85FB, // -31237
	0x85848584, // -31356
	0x85128512, // -31470
	0x84A484A4, // -31580
	0x843B843B, // -31685
	0x83D783D7, // -31785
	0x83788378, // -31880
	0x831D831D, // -31971
	0x82C782C7, // -32057
	0x82778277, // -32137
	0x822B822B, // -32213
	0x81E381E3, // -32285
	0x81A181A1, // -32351
	0x81648164, // -32412
	0x812B812B, // -32469
	0x80F780F7, // -32521
	0x80C980C9, // -32567
	0x809F809F, // -32609
	0x807A807A, // -32646
	0x805A805A, // -32678
	0x803F803F, // -32705
	0x80288028, // -32728
	0x80178017, // -32745
	0x800B800B, // -32757
	0x80038003, // -32765
	0x80018001, // -32767
	0x80038003, // -32765
	0x800B800B, // -32757
	0x80178017, // -32745
	0x80288028, // -32728
	0x803F803F, // -32705
	0x805A805A, // -32678
	0x807A807A, // -32646
	0x809F809F, // -32609
	0x80C980C9, // -32567
	0x80F780F7, // -32521
	0x812B812B, // -32469
	0x81648164, // -32412
	0x81A181A1, // -32351
	0x81E381E3, // -32285
	0x822B822B, // -32213
	0x82778277, // -32137
	0x82C782C7, // -32057
	0x831D831D, // -31971
	0x83788378, // -31880
	0x83D783D7, // -31785
	0x843B843B, // -31685
	0x84A484A4, // -31580
	0x85128512, // -31470
	0x85848584, // -31356
	0x85FB85FB, // -31237
	0x86778677, // -31113
	0x86F786F7, // -30985
	0x877C877C, // -30852
	0x88068806, // -30714
	0x88958895, // -30571
	0x89288928, // -30424
	0x89BF89BF, // -30273
	0x8A5B8A5B, // -30117
	0x8AFC8AFC, // -29956
	0x8BA18BA1, // -29791
	0x8C4B8C4B, // -29621
	0x8CF98CF9, // -29447
	0x8DAC8DAC, // -29268
	0x8E638E63, // -29085
	0x8F1E8F1E, // -28898
	0x8FDE8FDE, // -28706
	0x90A290A2, // -28510
	0x916A916A, // -28310
	0x92379237, // -28105
	0x93089308, // -27896
	0x93DD93DD, // -27683
	0x94B694B6, // -27466
	0x95939593, // -27245
	0x96759675, // -27019
	0x975A975A, // -26790
	0x98449844, // -26556
	0x99319931, // -26319
	0x9A239A23, // -26077
	0x9B189B18, // -25832
	0x9C129C12, // -25582
	0x9D0F9D0F, // -25329
	0x9E109E10, // -25072
	0x9F159F15, // -24811
	0xA01DA01D, // -24547
	0xA129A129, // -24279
	0xA239A239, // -24007
	0xA34DA34D, // -23731
	0xA464A464, // -23452
	0xA57EA57E, // -23170
	0xA69CA69C, // -22884
	0xA7BEA7BE, // -22594
	0xA8E3A8E3, // -22301
	0xAA0BAA0B, // -22005
	0xAB37AB37, // -21705
	0xAC65AC65, // -21403
	0xAD98AD98, // -21096
	0xAECDAECD, // -20787
	0xB005B005, // -20475
	0xB141B141, // -20159
	0xB27FB27F, // -19841
	0xB3C1B3C1, // -19519
	0xB505B505, // -19195
	0xB64CB64C, // -18868
	0xB797B797, // -18537
	0xB8E4B8E4, // -18204
	0xBA33BA33, // -17869
	0xBB86BB86, // -17530
	0xBCDBBCDB, // -17189
	0xBE32BE32, // -16846
	0xBF8DBF8D, // -16499
	0xC0E9C0E9, // -16151
	0xC248C248, // -15800
	0xC3AAC3AA, // -15446
	0xC50EC50E, // -15090
	0xC674C674, // -14732
	0xC7DCC7DC, // -14372
	0xC946C946, // -14010
	0xCAB3CAB3, // -13645
	0xCC21CC21, // -13279
	0xCD92CD92, // -12910
	0xCF05CF05, // -12539
	0xD079D079, // -12167
	0xD1EFD1EF, // -11793
	0xD367D367, // -11417
	0xD4E1D4E1, // -11039
	0xD65DD65D, // -10659
	0xD7DAD7DA, // -10278
	0xD958D958, // -9896
	0xDAD8DAD8, // -9512
	0xDC5ADC5A, // -9126
	0xDDDDDDDD, // -8739
	0xDF61DF61, // -8351
	0xE0E6E0E6, // -7962
	0xE26DE26D, // -7571
	0xE3F5E3F5, // -7179
	0xE57EE57E, // -6786
	0xE707E707, // -6393
	0xE892E892, // -5998
	0xEA1EEA1E, // -5602
	0xEBABEBAB, // -5205
	0xED38ED38, // -4808
	0xEEC6EEC6, // -4410
	0xF055F055, // -4011
	0xF1E4F1E4, // -3612
	0xF374F374, // -3212
	0xF505F505, // -2811
	0xF696F696, // -2410
	0xF827F827, // -2009
	0xF9B8F9B8, // -1608
	0xFB4AFB4A, // -1206
	0xFCDCFCDC, // -804
	0xFE6EFE6E, // -402
}
